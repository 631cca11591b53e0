package employee

import "fmt"

// Employee is a single directory record. ID is assigned by the service and
// is unique within a Document.
type Employee struct {
	ID         int    `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	Position   string `json:"position" bson:"position"`
	Department string `json:"department" bson:"department"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone" bson:"phone"`
}

// Draft carries the caller-supplied fields for create and update. It has no
// ID field, so an "id" sent by a client is dropped during decoding.
type Draft struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// WithID builds the full record for the given id.
func (d Draft) WithID(id int) Employee {
	return Employee{
		ID:         id,
		Name:       d.Name,
		Position:   d.Position,
		Department: d.Department,
		Email:      d.Email,
		Phone:      d.Phone,
	}
}

// Document is the whole persisted aggregate. Order is display order only.
type Document struct {
	Employees []Employee `json:"employees" bson:"employees"`
}

// NextID returns 1 + the highest id in the document, or 1 when empty.
// Deleted ids leave gaps and are never handed out again unless they were the max.
func (d Document) NextID() int {
	highest := 0
	for _, e := range d.Employees {
		if e.ID > highest {
			highest = e.ID
		}
	}
	return highest + 1
}

// IndexOf returns the position of the record with the given id, or -1.
func (d Document) IndexOf(id int) int {
	for i, e := range d.Employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Validate reports a duplicate id, which would make lookups ambiguous.
func (d Document) Validate() error {
	seen := make(map[int]struct{}, len(d.Employees))
	for _, e := range d.Employees {
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("duplicate employee id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// Clone returns a copy that shares no backing array with d.
func (d Document) Clone() Document {
	out := Document{Employees: make([]Employee, len(d.Employees))}
	copy(out.Employees, d.Employees)
	return out
}

// Seed returns the sample records written on first startup.
func Seed() Document {
	return Document{Employees: []Employee{
		{
			ID:         1,
			Name:       "John Doe",
			Position:   "Software Engineer",
			Department: "Engineering",
			Email:      "john.doe@example.com",
			Phone:      "123-456-7890",
		},
		{
			ID:         2,
			Name:       "Jane Smith",
			Position:   "Product Manager",
			Department: "Product",
			Email:      "jane.smith@example.com",
			Phone:      "098-765-4321",
		},
	}}
}
