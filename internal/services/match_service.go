package services

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"circular/internal/domain"
	"circular/internal/repos"
)

type MatchService struct {
	Customers *repos.CustomerRepo
	Items     *repos.ItemRepo

	// MaxResults caps the candidate list; 0 means unbounded.
	MaxResults int
}

func NewMatchService(customers *repos.CustomerRepo, items *repos.ItemRepo, maxResults int) *MatchService {
	return &MatchService{Customers: customers, Items: items, MaxResults: maxResults}
}

// Candidates returns available items matching the customer by size and
// gender compatibility, oldest stock first, each paired with a ready-to-send
// WhatsApp message link. Read-only: nothing is reserved or delivered.
func (s *MatchService) Candidates(customerID string) ([]domain.MatchCandidate, error) {
	c, err := s.Customers.ByID(customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := s.Items.MatchAvailable(c.ClothingSize, c.GenderInterest, s.MaxResults)
	if err != nil {
		return nil, err
	}

	out := make([]domain.MatchCandidate, 0, len(items))
	for _, it := range items {
		msg := FormatOffer(c, it)
		out = append(out, domain.MatchCandidate{
			Item:     it,
			Message:  msg,
			SendLink: WhatsAppLink(c.WhatsApp, msg),
		})
	}
	return out, nil
}

// FormatOffer builds the outbound message for one candidate item.
func FormatOffer(c domain.Customer, it domain.Item) string {
	return fmt.Sprintf("Olá %s, chegou uma %s no seu tamanho (%s) por apenas R$ %.2f! Quer reservar?",
		c.Name, it.Name, it.Size, it.Price)
}

// WhatsAppLink builds a wa.me contact link with the message URL-encoded.
func WhatsAppLink(handle, msg string) string {
	return "https://wa.me/" + handle + "?text=" + url.QueryEscape(msg)
}
