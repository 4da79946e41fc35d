package models

import "time"

// PortfolioOverview is a single headline card on the dashboard.
type PortfolioOverview struct {
	Title     string `json:"title"`
	Value     string `json:"value"`
	Icon      string `json:"icon"`
	IconColor string `json:"icon_color"`
	Extra     string `json:"extra"`
}

// Transaction is a row in the dashboard's recent-activity table.
type Transaction struct {
	Asset  string    `json:"asset"`
	Type   string    `json:"type"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

// Dashboard aggregates everything the dashboard endpoint returns.
type Dashboard struct {
	Overview     []PortfolioOverview `json:"overview"`
	Transactions []Transaction       `json:"transactions"`
}
