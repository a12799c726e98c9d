package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	t.Run("get after put", func(t *testing.T) {
		c := NewMemory[int]()
		c.Put("AAPL", 1)

		v, ok := c.Get("AAPL")
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("miss", func(t *testing.T) {
		c := NewMemory[string]()

		v, ok := c.Get("MSFT")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("put replaces", func(t *testing.T) {
		c := NewMemory[int]()
		c.Put("V", 1)
		c.Put("V", 2)

		v, _ := c.Get("V")
		assert.Equal(t, 2, v)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("separate instances do not share entries", func(t *testing.T) {
		a, b := NewMemory[int](), NewMemory[int]()
		a.Put("KO", 1)

		_, ok := b.Get("KO")
		assert.False(t, ok)
	})

	t.Run("concurrent access", func(t *testing.T) {
		c := NewMemory[int]()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("S%d", i%10)
				c.Put(key, i)
				c.Get(key)
			}(i)
		}
		wg.Wait()
		assert.Equal(t, 10, c.Len())
	})
}
