package tennis

import "time"

// Record is one persisted doubles result. Player1/Player2 form the left
// team, Player3/Player4 the right team. Records are immutable once created.
type Record struct {
	ID         string    `json:"id" msgpack:"id"`
	Player1    string    `json:"player1" msgpack:"player1"`
	Player2    string    `json:"player2" msgpack:"player2"`
	Player3    string    `json:"player3" msgpack:"player3"`
	Player4    string    `json:"player4" msgpack:"player4"`
	ScoreLeft  int       `json:"score_left" msgpack:"score_left"`
	ScoreRight int       `json:"score_right" msgpack:"score_right"`
	CreatedAt  time.Time `json:"created_at" msgpack:"created_at"`
}

// Players holds the four roster names of a doubles match.
type Players struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Player3 string `json:"player3"`
	Player4 string `json:"player4"`
}

// Scores holds the game score of a doubles match.
type Scores struct {
	Left  int `json:"score_left"`
	Right int `json:"score_right"`
}

// Filters selects records by team membership. Empty slots are inactive;
// Player1/Player2 filter the left team, Player3/Player4 the right team.
type Filters struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Player3 string `json:"player3"`
	Player4 string `json:"player4"`
}

// FilteredRecord is a record that matched a filter. Flipped marks records
// whose stored teams are the reverse of the filter's orientation.
type FilteredRecord struct {
	Record
	Flipped bool `json:"flipped"`
}

// Oriented returns the record in the filter's frame: for flipped matches the
// teams and scores are swapped so that the filter's left side is on the left.
func (f FilteredRecord) Oriented() Record {
	if !f.Flipped {
		return f.Record
	}
	r := f.Record
	r.Player1, r.Player2, r.Player3, r.Player4 = f.Player3, f.Player4, f.Player1, f.Player2
	r.ScoreLeft, r.ScoreRight = f.ScoreRight, f.ScoreLeft
	return r
}

// Summary aggregates wins and losses over an orientation-corrected sequence.
type Summary struct {
	Total   int     `json:"total"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`
}
