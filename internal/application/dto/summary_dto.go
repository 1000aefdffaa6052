package dto

// DailySummaryResponse totales del día actual (UTC).
type DailySummaryResponse struct {
	Entries int `json:"entradas"`
	Exits   int `json:"saidas"`
}

// FabricBalanceResponse saldo con signo de una tela.
type FabricBalanceResponse struct {
	Fabric   string `json:"tecido"`
	Quantity int    `json:"quantidade"`
}

// FabricSummaryResponse saldos por tela, ordenados de mayor a menor.
type FabricSummaryResponse struct {
	Items []FabricBalanceResponse `json:"items"`
}
