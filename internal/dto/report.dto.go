package dto

type AssetReportRow struct {
	AssetType      string  `json:"asset_type"`
	Quantity       int64   `json:"quantity"`
	TotalValue     float64 `json:"total_value"`
	AssetCondition string  `json:"asset_condition"`
}

type FinancialReportRow struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	Fines      float64 `json:"fines"`
	Membership float64 `json:"membership"`
}

type GenreReportRow struct {
	Genre     string `json:"genre"`
	Total     int64  `json:"total"`
	Available int64  `json:"available"`
	Borrowed  int64  `json:"borrowed"`
}

type SubjectInventoryRow struct {
	Subject   string `json:"subject"`
	Total     int64  `json:"total"`
	Available int64  `json:"available"`
	Borrowed  int64  `json:"borrowed"`
}

type UserStatisticRow struct {
	Metric string `json:"metric"`
	Value  int64  `json:"value"`
}

type OwnerDashboard struct {
	Revenue            float64 `json:"revenue"`
	ActiveMembers      int64   `json:"activeMembers"`
	BooksInCirculation int64   `json:"booksInCirculation"`
	OutstandingFines   float64 `json:"outstandingFines"`
}
