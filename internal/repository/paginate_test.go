package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	m := NewPageMeta(0, 1, 10)
	assert.Equal(t, 0, m.LastPage)
	assert.Nil(t, m.Prev)
	assert.Nil(t, m.Next)

	m = NewPageMeta(25, 2, 10)
	assert.Equal(t, 3, m.LastPage)
	assert.Equal(t, 1, *m.Prev)
	assert.Equal(t, 3, *m.Next)

	m = NewPageMeta(5, -3, 0)
	assert.Equal(t, 1, m.CurrentPage)
	assert.Equal(t, DefaultPerPage, m.PerPage)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%abc%", ContainsPattern("AbC"))
	assert.Equal(t, `%50\%\_off%`, ContainsPattern("50%_off"))
}
