package billiards

import "time"

// Record is one persisted handicap session row. A player may have several
// rows per day; the whole day is replaced on save.
type Record struct {
	ID         string    `json:"id" msgpack:"id"`
	PlayerName string    `json:"player_name" msgpack:"player_name"`
	BaseDama   float64   `json:"base_dama" msgpack:"base_dama"`
	MinusDama  float64   `json:"minus_dama" msgpack:"minus_dama"`
	PlusDama   float64   `json:"plus_dama" msgpack:"plus_dama"`
	Percentage float64   `json:"percentage" msgpack:"percentage"`
	CreatedAt  time.Time `json:"created_at" msgpack:"created_at"`
}

// Entry is one input row for a day save. IDs and timestamps are stamped at
// persistence time.
type Entry struct {
	PlayerName string  `json:"player_name"`
	BaseDama   float64 `json:"base_dama"`
	MinusDama  float64 `json:"minus_dama"`
	PlusDama   float64 `json:"plus_dama"`
	Percentage float64 `json:"percentage"`
}

// RankedRecord is a record with its position in a descending-percentage
// ordering.
type RankedRecord struct {
	Record
	Rank int `json:"rank"`
}
