package webstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func press(c *Calculator, keys ...string) {
	for _, key := range keys {
		switch key {
		case ".":
			c.InputDecimal()
		case "+", "-", "×", "÷", "*", "/":
			c.InputOperation(key)
		case "=":
			c.Equals()
		case "C":
			c.Clear()
		default:
			c.InputDigit(key)
		}
	}
}

func TestCalculatorDigits(t *testing.T) {
	c := NewCalculator()
	assert.Equal(t, "0", c.Display)

	press(c, "1", "2", "3")
	assert.Equal(t, "123", c.Display)

	// leading zero diganti, bukan ditambah
	c.Clear()
	press(c, "0", "7")
	assert.Equal(t, "7", c.Display)
}

func TestCalculatorDecimal(t *testing.T) {
	c := NewCalculator()
	press(c, "3", ".", "1", "4")
	assert.Equal(t, "3.14", c.Display)

	// titik kedua diabaikan
	press(c, ".")
	press(c, "5")
	assert.Equal(t, "3.145", c.Display)
}

func TestCalculatorBasicOperations(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"addition", []string{"1", "2", "+", "8", "="}, "20"},
		{"subtraction", []string{"5", "-", "9", "="}, "-4"},
		{"multiplication", []string{"2", "5", "×", "4", "="}, "100"},
		{"division", []string{"9", "÷", "2", "="}, "4.5"},
		{"divide by zero", []string{"7", "÷", "0", "="}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCalculator()
			press(c, tt.keys...)
			assert.Equal(t, tt.want, c.Display)
		})
	}
}

func TestCalculatorChainedOperations(t *testing.T) {
	// 1 + 2 + menampilkan hasil parsial 3
	c := NewCalculator()
	press(c, "1", "+", "2", "+")
	assert.Equal(t, "3", c.Display)

	press(c, "4", "=")
	assert.Equal(t, "7", c.Display)
}

func TestCalculatorEqualsWithoutOperation(t *testing.T) {
	c := NewCalculator()
	press(c, "4", "2", "=")
	assert.Equal(t, "42", c.Display)
}

func TestCalculatorNewNumberAfterEquals(t *testing.T) {
	c := NewCalculator()
	press(c, "2", "+", "3", "=")
	assert.Equal(t, "5", c.Display)

	// angka berikutnya memulai hitungan baru
	press(c, "9")
	assert.Equal(t, "9", c.Display)
}

func TestCalculatorClear(t *testing.T) {
	c := NewCalculator()
	press(c, "8", "+", "1")
	press(c, "C")

	assert.Equal(t, "0", c.Display)
	assert.Nil(t, c.Previous)
	assert.Empty(t, c.Operation)
}
