package domain

// GrantResult is the outcome of granting items to a player.
type GrantResult struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
}

// ConsumePlayer reports the player's stats after a consume operation.
type ConsumePlayer struct {
	ID int64 `json:"id"`
	HP int   `json:"hp"`
	MP int   `json:"mp"`
}

// ConsumeResult is the outcome of consuming items for their stat effect.
// RemainingCount is the count left in inventory after the units actually
// used were deducted.
type ConsumeResult struct {
	ItemID         int64         `json:"item_id"`
	RemainingCount int           `json:"count"`
	Player         ConsumePlayer `json:"player"`
}

// GachaDraw reports how many of one item a gacha batch awarded.
type GachaDraw struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
}

// GachaItem reports the post-draw total held of one item touched by a
// gacha batch.
type GachaItem struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
}

// GachaPlayer reports the player's money and touched inventory totals
// after a gacha batch.
type GachaPlayer struct {
	Money int         `json:"money"`
	Items []GachaItem `json:"items"`
}

// GachaResult is the outcome of a batch of gacha draws. Draws carries the
// per-item counts won by this batch; Player.Items carries the resulting
// inventory totals for the same items.
type GachaResult struct {
	Draws  []GachaDraw `json:"results"`
	Player GachaPlayer `json:"player"`
}

// EconomyUseCase defines the interface for the transactional economy engine.
// Every operation runs inside a single database transaction and acquires a
// row-level lock on the target player before any state-informing read, so
// concurrent operations against the same player serialize while operations
// on different players proceed in parallel.
type EconomyUseCase interface {
	GrantItem(playerID, itemID int64, count int) (*GrantResult, error)
	ConsumeItem(playerID, itemID int64, count int) (*ConsumeResult, error)
	DrawGacha(playerID int64, drawCount, unitPrice int) (*GachaResult, error)
}
