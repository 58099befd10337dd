package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// CreditValueUSD is what one campus credit is worth when shown in dollars.
var CreditValueUSD = decimal.RequireFromString("0.1")

type User struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	AvatarURL       string          `json:"avatar_url"`
	CampusCredits   decimal.Decimal `json:"campus_credits"`
	ReputationScore float64         `json:"reputation_score"`
	NftTickets      []NftTicket     `json:"nft_tickets"`
	Transactions    []Transaction   `json:"transactions"`
}

type NftTicket struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	EventName  string    `json:"event_name"`
	TicketType string    `json:"ticket_type"`
	EventDate  time.Time `json:"event_date"`
	Location   string    `json:"location"`
	ImageID    string    `json:"image_id"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
}

type Purchase struct {
	UserID      string      `json:"user_id"`
	Ticket      NftTicket   `json:"ticket"`
	Transaction Transaction `json:"transaction"`
	// Price is in campus credits.
	Price            decimal.Decimal `json:"price"`
	RemainingCredits decimal.Decimal `json:"remaining_credits"`
}

type MarketInsights struct {
	EventID                  string          `json:"event_id"`
	AnalysesCompleted        int             `json:"analyses_completed"`
	AnalysesFailed           int             `json:"analyses_failed"`
	LastFairPriceEstimate    decimal.Decimal `json:"last_fair_price_estimate"`
	AverageFairPriceEstimate decimal.Decimal `json:"average_fair_price_estimate"`
	TicketsSold              int             `json:"tickets_sold"`
}
