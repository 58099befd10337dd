package store

import (
	"time"

	"campustix/entity"

	"github.com/shopspring/decimal"
)

const DemoUserID = "user-1"

const day = 24 * time.Hour

// NewSeededMemory returns a Memory holding the demo campus catalog and user, with event dates relative to now.
func NewSeededMemory(now time.Time) *Memory {
	mem := NewMemory()
	now = now.UTC()

	mem.events = []entity.Event{
		{
			ID:          "event-1",
			Title:       "Annual Summer Music Fest",
			Description: "Join us for the biggest music festival on campus! Featuring live bands, food trucks, and amazing vibes. This year's headliners include The Scholars, Library Quiet, and DJ Bookworm. Don't miss out on the event of the year!",
			Date:        now.Add(7 * day),
			Location:    "Main Campus Quad",
			Category:    "Music",
			PriceRange:  priceRange(25, 75),
			ImageID:     "event-1",
		},
		{
			ID:          "event-2",
			Title:       "InnovateTech Conference 2024",
			Description: "A full-day conference on the future of technology. Hear from industry leaders, participate in hands-on workshops, and network with fellow innovators. Topics include AI, blockchain, and sustainable tech.",
			Date:        now.Add(14 * day),
			Location:    "Engineering Hall Auditorium",
			Category:    "Tech",
			PriceRange:  priceRange(15, 50),
			ImageID:     "event-2",
		},
		{
			ID:          "event-3",
			Title:       "Senior Art Exhibition",
			Description: "Celebrate the works of our talented senior art students. The exhibition showcases a diverse range of mediums including painting, sculpture, and digital art. Opening night includes a reception with the artists.",
			Date:        now.Add(21 * day),
			Location:    "Fine Arts Gallery",
			Category:    "Arts",
			PriceRange:  priceRange(0, 10),
			ImageID:     "event-3",
		},
		{
			ID:          "event-4",
			Title:       "Homecoming Football Game",
			Description: "Cheer on the home team in the final game of the season! Expect a thrilling match, halftime shows, and a roaring crowd. Go Team!",
			Date:        now.Add(30 * day),
			Location:    "University Stadium",
			Category:    "Sports",
			PriceRange:  priceRange(20, 100),
			ImageID:     "event-4",
		},
	}

	mem.tiers["event-1"] = []entity.TicketTier{
		{ID: "ticket-1", EventID: "event-1", Name: "General Admission", Quantity: 85, Price: decimal.NewFromInt(25)},
		{ID: "ticket-2", EventID: "event-1", Name: "VIP Pass", Quantity: 12, Price: decimal.NewFromInt(75)},
	}
	mem.tiers["event-2"] = []entity.TicketTier{
		{ID: "ticket-3", EventID: "event-2", Name: "Student Pass", Quantity: 200, Price: decimal.NewFromInt(15)},
		{ID: "ticket-4", EventID: "event-2", Name: "Workshop Pass", Quantity: 40, Price: decimal.NewFromInt(50)},
	}
	mem.tiers["event-3"] = []entity.TicketTier{
		{ID: "ticket-5", EventID: "event-3", Name: "Gallery Entry", Quantity: 150, Price: decimal.Zero},
		{ID: "ticket-6", EventID: "event-3", Name: "Opening Reception", Quantity: 60, Price: decimal.NewFromInt(10)},
	}
	mem.tiers["event-4"] = []entity.TicketTier{
		{ID: "ticket-7", EventID: "event-4", Name: "Student Section", Quantity: 500, Price: decimal.NewFromInt(20)},
		{ID: "ticket-8", EventID: "event-4", Name: "Club Seats", Quantity: 30, Price: decimal.NewFromInt(100)},
	}

	mem.resaleListings["event-1"] = []entity.ResaleListing{
		{ID: "resale-1", EventID: "event-1", SellerName: "Alex R.", OriginalPrice: decimal.NewFromInt(25), ResalePrice: decimal.NewFromInt(35)},
		{ID: "resale-2", EventID: "event-1", SellerName: "Sam K.", OriginalPrice: decimal.NewFromInt(25), ResalePrice: decimal.NewFromInt(40)},
	}

	mem.reviews["event-1"] = []entity.Review{
		{
			ID:        "review-1",
			EventID:   "event-1",
			Name:      "Mark P.",
			AvatarURL: "https://picsum.photos/seed/p1/40/40",
			Rating:    5,
			Comment:   "Absolutely incredible event! The energy was insane and the lineup was top-notch. Can't wait for next year!",
		},
		{
			ID:        "review-2",
			EventID:   "event-1",
			Name:      "Chloe G.",
			AvatarURL: "https://picsum.photos/seed/p2/40/40",
			Rating:    4,
			Comment:   "Well organized and a lot of fun. The food trucks were a great addition. Sound could have been a bit better at times.",
		},
	}

	mem.users[DemoUserID] = entity.User{
		ID:              DemoUserID,
		Name:            "Jane Doe",
		Email:           "jane.doe@campus.edu",
		CampusCredits:   decimal.NewFromInt(1250),
		ReputationScore: 4.8,
		NftTickets: []entity.NftTicket{
			{
				ID:         "nft-1",
				EventID:    "event-1",
				EventName:  "Annual Summer Music Fest",
				TicketType: "VIP Pass",
				EventDate:  now.Add(7 * day),
				Location:   "Main Campus Quad",
				ImageID:    "ticket-nft-1",
			},
			{
				ID:         "nft-2",
				EventID:    "event-4",
				EventName:  "Homecoming Football Game",
				TicketType: "Student Section",
				EventDate:  now.Add(30 * day),
				Location:   "University Stadium",
				ImageID:    "ticket-nft-2",
			},
		},
		Transactions: []entity.Transaction{
			{ID: "tx-1", Date: now, Description: "Ticket Purchase: Music Fest", Amount: decimal.NewFromInt(25), Type: entity.TransactionDebit},
			{ID: "tx-2", Date: now.Add(-2 * day), Description: "Campus Credits Deposit", Amount: decimal.NewFromInt(50), Type: entity.TransactionCredit},
			{ID: "tx-3", Date: now.Add(-5 * day), Description: "Ticket Sale: Art Show", Amount: decimal.NewFromInt(10), Type: entity.TransactionCredit},
		},
	}

	return mem
}

func priceRange(min, max int64) entity.PriceRange {
	return entity.PriceRange{
		Min: decimal.NewFromInt(min),
		Max: decimal.NewFromInt(max),
	}
}
