package domain

// Currency é a moeda nativa de um domínio no Ad Manager
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
)

// DomainSpec descreve um domínio de publisher consultado na API de relatórios
type DomainSpec struct {
	Domain      string
	NetworkCode string
	Currency    Currency
}
