package billing

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Captcha suma de dos cifras que el usuario debe resolver antes de enviar la factura.
type Captcha struct {
	A, B int
}

// NewCaptcha genera dos operandos aleatorios entre 0 y 9.
func NewCaptcha() Captcha {
	return Captcha{A: rand.IntN(10), B: rand.IntN(10)}
}

// Question texto mostrado al usuario.
func (c Captcha) Question() string {
	return fmt.Sprintf("¿Cuánto es %d + %d?", c.A, c.B)
}

// Check compara la respuesta con la suma. Una respuesta no numérica es incorrecta.
func (c Captcha) Check(answer string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	return err == nil && n == c.A+c.B
}
