package web

import "github.com/gofiber/fiber/v2"

// CalculatorKey handles one keypress of the floating calculator widget.
// The state lives in the visitor session; the response is the new display
// so the widget can update in place.
func (h *Handler) CalculatorKey(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	key := c.FormValue("key")
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		st.Calc.InputDigit(key)
	case ".":
		st.Calc.InputDecimal()
	case "+", "-", "×", "*", "÷", "/":
		st.Calc.InputOperation(key)
	case "=":
		st.Calc.Equals()
	case "C":
		st.Calc.Clear()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Unknown key",
		})
	}

	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"success": true,
		"display": st.Calc.Display,
	})
}
