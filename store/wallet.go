package store

import (
	"context"
	"fmt"
	"time"

	"campustix/entity"

	"github.com/google/uuid"
)

type WalletRepo struct {
	mem *Memory
	now func() time.Time
}

func NewWalletRepo(mem *Memory) WalletRepo {
	return WalletRepo{
		mem: mem,
		now: time.Now,
	}
}

func (r WalletRepo) Get(_ context.Context, userID string) (entity.User, error) {
	r.mem.lock.RLock()
	defer r.mem.lock.RUnlock()

	user, ok := r.mem.users[userID]
	if !ok {
		return entity.User{}, notFoundError{kind: "user", id: userID}
	}

	return copyUser(user), nil
}

// Purchase pays for one ticket of the tier with campus credits and adds it to the user's wallet.
func (r WalletRepo) Purchase(_ context.Context, userID, eventID, tierID string) (entity.Purchase, error) {
	r.mem.lock.Lock()
	defer r.mem.lock.Unlock()

	user, ok := r.mem.users[userID]
	if !ok {
		return entity.Purchase{}, notFoundError{kind: "user", id: userID}
	}

	i := r.mem.eventIndex(eventID)
	if i < 0 {
		return entity.Purchase{}, notFoundError{kind: "event", id: eventID}
	}
	event := r.mem.events[i]

	tiers := r.mem.tiers[eventID]
	t := -1
	for j := range tiers {
		if tiers[j].ID == tierID {
			t = j
			break
		}
	}
	if t < 0 {
		return entity.Purchase{}, notFoundError{kind: "ticket tier", id: tierID}
	}
	tier := tiers[t]

	if tier.Quantity == 0 {
		return entity.Purchase{}, soldOutError{tierID: tierID}
	}

	if user.CampusCredits.LessThan(tier.Price) {
		return entity.Purchase{}, insufficientCreditsError{
			creditsAvailable: user.CampusCredits,
			creditsRequired:  tier.Price,
		}
	}

	ticket := entity.NftTicket{
		ID:         "nft-" + uuid.NewString(),
		EventID:    event.ID,
		EventName:  event.Title,
		TicketType: tier.Name,
		EventDate:  event.Date,
		Location:   event.Location,
		ImageID:    "ticket-nft-1",
	}

	tx := entity.Transaction{
		ID:          "tx-" + uuid.NewString(),
		Date:        r.now().UTC(),
		Description: fmt.Sprintf("Ticket Purchase: %s", event.Title),
		Amount:      tier.Price,
		Type:        entity.TransactionDebit,
	}

	user = copyUser(user)
	user.CampusCredits = user.CampusCredits.Sub(tier.Price)
	user.NftTickets = append(user.NftTickets, ticket)
	user.Transactions = append([]entity.Transaction{tx}, user.Transactions...)

	tiers[t].Quantity--
	r.mem.users[userID] = user

	return entity.Purchase{
		UserID:           userID,
		Ticket:           ticket,
		Transaction:      tx,
		Price:            tier.Price,
		RemainingCredits: user.CampusCredits,
	}, nil
}

func copyUser(u entity.User) entity.User {
	u.NftTickets = append([]entity.NftTicket(nil), u.NftTickets...)
	u.Transactions = append([]entity.Transaction(nil), u.Transactions...)
	return u
}
