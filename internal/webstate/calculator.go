package webstate

import "strconv"

// Calculator is the state machine behind the floating calculator widget:
// a display string, a pending operand and a pending operator.
type Calculator struct {
	Display       string   `json:"display"`
	Previous      *float64 `json:"previous,omitempty"`
	Operation     string   `json:"operation,omitempty"`
	WaitingForNew bool     `json:"waiting_for_new"`
}

func NewCalculator() *Calculator {
	return &Calculator{Display: "0"}
}

// InputDigit appends a digit to the display, or starts a new number when
// an operator was just pressed
func (c *Calculator) InputDigit(digit string) {
	if c.Display == "" {
		c.Display = "0"
	}
	if c.WaitingForNew {
		c.Display = digit
		c.WaitingForNew = false
		return
	}
	if c.Display == "0" {
		c.Display = digit
		return
	}
	c.Display += digit
}

// InputDecimal adds the decimal point at most once per number
func (c *Calculator) InputDecimal() {
	if c.WaitingForNew {
		c.Display = "0."
		c.WaitingForNew = false
		return
	}
	for _, r := range c.Display {
		if r == '.' {
			return
		}
	}
	c.Display += "."
}

// InputOperation stores the operator; a chained operator first resolves
// the pending one (1 + 2 + → display 3)
func (c *Calculator) InputOperation(op string) {
	value := c.currentValue()

	if c.Previous == nil {
		c.Previous = &value
	} else if c.Operation != "" {
		result := applyOperation(*c.Previous, value, c.Operation)
		c.Previous = &result
		c.Display = formatValue(result)
	}

	c.Operation = op
	c.WaitingForNew = true
}

// Equals resolves the pending operation, if any
func (c *Calculator) Equals() {
	if c.Previous == nil || c.Operation == "" {
		return
	}
	result := applyOperation(*c.Previous, c.currentValue(), c.Operation)
	c.Display = formatValue(result)
	c.Previous = nil
	c.Operation = ""
	c.WaitingForNew = true
}

// Clear resets to the initial state
func (c *Calculator) Clear() {
	*c = Calculator{Display: "0"}
}

func (c *Calculator) currentValue() float64 {
	v, err := strconv.ParseFloat(c.Display, 64)
	if err != nil {
		return 0
	}
	return v
}

func applyOperation(a, b float64, op string) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "×", "*":
		return a * b
	case "÷", "/":
		if b == 0 {
			return 0
		}
		return a / b
	}
	return b
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
