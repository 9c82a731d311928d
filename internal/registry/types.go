package registry

import "time"

// User is a member of the club roster. Users are created by registration and
// never updated or deleted in-app.
type User struct {
	ID        string    `json:"id" msgpack:"id"`
	Name      string    `json:"name" msgpack:"name"`
	CreatedAt time.Time `json:"created_at" msgpack:"created_at"`
}
