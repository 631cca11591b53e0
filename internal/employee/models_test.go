package employee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	require.Equal(t, 1, Document{}.NextID())

	d := Document{Employees: []Employee{{ID: 3}, {ID: 7}, {ID: 2}}}
	require.Equal(t, 8, d.NextID())
}

func TestIndexOf(t *testing.T) {
	d := Document{Employees: []Employee{{ID: 3}, {ID: 7}}}
	require.Equal(t, 1, d.IndexOf(7))
	require.Equal(t, -1, d.IndexOf(4))
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	require.NoError(t, Seed().Validate())

	d := Document{Employees: []Employee{{ID: 1}, {ID: 2}, {ID: 1}}}
	require.Error(t, d.Validate())
}

func TestCloneDoesNotAlias(t *testing.T) {
	d := Seed()
	c := d.Clone()
	c.Employees[0].Name = "changed"
	require.Equal(t, "John Doe", d.Employees[0].Name)
}

func TestDraftWithID(t *testing.T) {
	e := Draft{Name: "Alice", Position: "Eng", Department: "R&D", Email: "a@x.com", Phone: "1"}.WithID(5)
	require.Equal(t, Employee{ID: 5, Name: "Alice", Position: "Eng", Department: "R&D", Email: "a@x.com", Phone: "1"}, e)
}
