package events

import (
	"time"

	"cloud.google.com/go/pubsub"
)

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message published after a record
// operation completes.
type EventType string

const (
	EventUserRegistered    EventType = "user-registered"
	EventTennisRecordSaved EventType = "tennis-record-saved"
	EventBilliardsDaySaved EventType = "billiards-day-saved"
)

// UserRegistered is the payload for EventUserRegistered.
type UserRegistered struct {
	UserID string `msgpack:"user_id"`
	Name   string `msgpack:"name"`
}

// TennisRecordSaved is the payload for EventTennisRecordSaved.
type TennisRecordSaved struct {
	RecordID   string `msgpack:"record_id"`
	Player1    string `msgpack:"player1"`
	Player2    string `msgpack:"player2"`
	Player3    string `msgpack:"player3"`
	Player4    string `msgpack:"player4"`
	ScoreLeft  int    `msgpack:"score_left"`
	ScoreRight int    `msgpack:"score_right"`
}

// BilliardsDaySaved is the payload for EventBilliardsDaySaved.
type BilliardsDaySaved struct {
	Date time.Time `msgpack:"date"`
	Rows int       `msgpack:"rows"`
}
