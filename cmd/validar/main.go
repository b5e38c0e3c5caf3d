// validar comprueba en lote documentos de identidad, teléfonos, códigos
// postales o fechas leídos de un fichero de texto, uno por línea.
//
// Uso: go run ./cmd/validar [--campo documento] [--latin1] [fichero]
// Sin fichero lee de la entrada estándar. Escribe una línea TSV por valor:
// valor, OK/ERROR y un detalle (tipo de documento o provincia).
// Termina con código 1 si algún valor no es válido.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/facturador/internal/domain/validation"
	"github.com/jhoicas/facturador/pkg/nif"
)

func main() {
	app := &cli.App{
		Name:      "validar",
		Usage:     "valida identificadores españoles en lote",
		ArgsUsage: "[fichero]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "campo",
				Aliases: []string{"c"},
				Value:   validation.FieldDocument,
				Usage:   "documento, telefono, cp o fecha",
			},
			&cli.BoolFlag{
				Name:  "latin1",
				Usage: "el fichero está codificado en ISO-8859-1",
			},
			&cli.StringFlag{
				Name:  "zona",
				Value: "Europe/Madrid",
				Usage: "zona horaria para decidir qué es hoy (campo fecha)",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "validar: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	field := c.String("campo")
	switch field {
	case validation.FieldDocument, validation.FieldPhone, validation.FieldPostalCode, validation.FieldDate:
	default:
		return fmt.Errorf("campo no soportado: %q", field)
	}
	loc, err := time.LoadLocation(c.String("zona"))
	if err != nil {
		return fmt.Errorf("zona horaria: %w", err)
	}

	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("abrir fichero: %w", err)
		}
		defer f.Close()
		in = f
	}
	if c.Bool("latin1") {
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	}

	stats, err := check(in, os.Stdout, field, validation.New(validation.WithLocation(loc)))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d válidos, %d inválidos\n", stats.valid, stats.invalid)
	if stats.invalid > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

type stats struct {
	valid, invalid int
}

// check valida cada línea no vacía de in y escribe el resultado en out.
func check(in io.Reader, out io.Writer, field string, v *validation.Validator) (stats, error) {
	var st stats
	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		value := strings.TrimSpace(sc.Text())
		if value == "" {
			continue
		}
		if !v.Valid(field, value) {
			st.invalid++
			fmt.Fprintf(w, "%s\tERROR\t\n", value)
			continue
		}
		st.valid++
		fmt.Fprintf(w, "%s\tOK\t%s\n", value, detail(field, value))
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("leer entrada: %w", err)
	}
	return st, w.Flush()
}

func detail(field, value string) string {
	switch field {
	case validation.FieldDocument:
		return string(nif.Classify(value))
	case validation.FieldPostalCode:
		return validation.ProvinceFor(value)
	default:
		return ""
	}
}
