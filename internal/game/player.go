package game

import "github.com/google/uuid"

// Player is a seat in a room. A seat with EmptySeat set belongs to a player
// who disconnected mid-game; its hand stays in place for whoever takes it over.
type Player struct {
	ID        string `json:"id"`
	ConnID    string `json:"conn_id"`
	Name      string `json:"name"`
	Hand      []Card `json:"hand"`
	EmptySeat bool   `json:"empty_seat"`
}

func NewPlayer(connID, name string) *Player {
	return &Player{
		ID:     uuid.NewString(),
		ConnID: connID,
		Name:   name,
		Hand:   []Card{},
	}
}

func (p *Player) HasCard(cardID string) bool {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// RemoveFromHand takes the named card out of the hand and returns it along
// with the slot it occupied, so a replacement can be drawn into the same slot.
func (p *Player) RemoveFromHand(cardID string) (Card, int, error) {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return c, i, nil
		}
	}
	return Card{}, 0, ErrCardNotFound
}

// InsertInHand places a card at the given slot, clamped to the hand's bounds.
func (p *Player) InsertInHand(c Card, slot int) {
	if slot < 0 {
		slot = 0
	}
	if slot > len(p.Hand) {
		slot = len(p.Hand)
	}
	p.Hand = append(p.Hand, Card{})
	copy(p.Hand[slot+1:], p.Hand[slot:])
	p.Hand[slot] = c
}

func (p *Player) AddToHand(c Card) {
	p.Hand = append(p.Hand, c)
}

// Vacate marks the seat as abandoned. The hand is kept for a takeover.
func (p *Player) Vacate() {
	p.EmptySeat = true
	p.Name = ""
	p.ConnID = ""
}

// Occupy rebinds a vacated seat to a new occupant, hand and all.
func (p *Player) Occupy(connID, name string) {
	p.ConnID = connID
	p.Name = name
	p.EmptySeat = false
}

func (p *Player) clone() *Player {
	out := *p
	out.Hand = make([]Card, len(p.Hand))
	copy(out.Hand, p.Hand)
	return &out
}
