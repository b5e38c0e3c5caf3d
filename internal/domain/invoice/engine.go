package invoice

import (
	"sync"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Snapshot estado consistente de la factura tras una mutación.
type Snapshot struct {
	Lines  []entity.LineItem
	Totals entity.InvoiceTotals
}

// Listener recibe el nuevo estado después de cada mutación.
type Listener func(Snapshot)

// LinePatch cambios sobre una línea existente. Los campos nil se mantienen.
type LinePatch struct {
	ID          int
	Quantity    *int
	Description *string
	UnitPrice   *decimal.Decimal
	TaxRate     *int
}

// Engine mantiene las líneas de una factura y sus totales siempre coherentes.
// Cada sesión de facturación tiene su propio Engine; no hay estado compartido.
type Engine struct {
	mu        sync.Mutex
	lines     []entity.LineItem
	totals    entity.InvoiceTotals
	nextID    int
	listeners []subscription
	nextSub   int
}

type subscription struct {
	id int
	fn Listener
}

// New crea un motor con una línea por defecto.
func New() *Engine {
	e := &Engine{}
	e.mu.Lock()
	e.appendDefaultLocked()
	e.totals = ComputeTotals(e.lines)
	e.mu.Unlock()
	return e
}

// Subscribe registra un listener y devuelve la función para darlo de baja.
// Los listeners se notifican en orden de alta.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.listeners = append(e.listeners, subscription{id: id, fn: l})
	e.mu.Unlock()
	return func() {
		e.mu.Lock()
		for i, sub := range e.listeners {
			if sub.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				break
			}
		}
		e.mu.Unlock()
	}
}

// AddLine añade una línea por defecto con un ID nuevo y la devuelve.
func (e *Engine) AddLine() entity.LineItem {
	e.mu.Lock()
	line := e.appendDefaultLocked()
	snap, ls := e.commitLocked()
	e.mu.Unlock()
	notify(ls, snap)
	return line
}

// AddLineAfter añade una línea por defecto solo si ready acepta la última
// línea actual; la comprobación y el alta ocurren bajo el mismo bloqueo.
// Si ready la rechaza devuelve esa última línea y false.
func (e *Engine) AddLineAfter(ready func(last entity.LineItem) bool) (entity.LineItem, bool) {
	e.mu.Lock()
	if last := e.lines[len(e.lines)-1]; !ready(last) {
		e.mu.Unlock()
		return last, false
	}
	line := e.appendDefaultLocked()
	snap, ls := e.commitLocked()
	e.mu.Unlock()
	notify(ls, snap)
	return line, true
}

// RemoveLine elimina la línea id. Si no existe no hace nada.
// La factura nunca queda vacía: al borrar la última línea se añade una por defecto.
func (e *Engine) RemoveLine(id int) {
	e.mu.Lock()
	idx := e.indexLocked(id)
	if idx < 0 {
		e.mu.Unlock()
		return
	}
	e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	if len(e.lines) == 0 {
		e.appendDefaultLocked()
	}
	snap, ls := e.commitLocked()
	e.mu.Unlock()
	notify(ls, snap)
}

// UpdateLine aplica patch sobre la línea con el mismo ID y recalcula sus
// importes. No valida los valores recibidos.
func (e *Engine) UpdateLine(patch LinePatch) (entity.LineItem, error) {
	e.mu.Lock()
	idx := e.indexLocked(patch.ID)
	if idx < 0 {
		e.mu.Unlock()
		return entity.LineItem{}, domain.ErrNotFound
	}
	line := e.lines[idx]
	if patch.Quantity != nil {
		line.Quantity = *patch.Quantity
	}
	if patch.Description != nil {
		line.Description = *patch.Description
	}
	if patch.UnitPrice != nil {
		line.UnitPrice = *patch.UnitPrice
	}
	if patch.TaxRate != nil {
		line.TaxRate = *patch.TaxRate
	}
	line = applyDerived(line)
	e.lines[idx] = line
	snap, ls := e.commitLocked()
	e.mu.Unlock()
	notify(ls, snap)
	return line, nil
}

// Lines copia de las líneas actuales en orden de alta.
func (e *Engine) Lines() []entity.LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.copyLinesLocked()
}

// Totals totales actuales.
func (e *Engine) Totals() entity.InvoiceTotals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totals
}

// Snapshot líneas y totales leídos bajo el mismo bloqueo.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot{Lines: e.copyLinesLocked(), Totals: e.totals}
}

// Reset vacía la factura, reinicia el contador de IDs y deja una línea por defecto.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.lines = nil
	e.nextID = 0
	e.appendDefaultLocked()
	snap, ls := e.commitLocked()
	e.mu.Unlock()
	notify(ls, snap)
}

func (e *Engine) appendDefaultLocked() entity.LineItem {
	line := applyDerived(entity.NewDefaultLine(e.nextID))
	e.nextID++
	e.lines = append(e.lines, line)
	return line
}

func (e *Engine) indexLocked(id int) int {
	for i, l := range e.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) copyLinesLocked() []entity.LineItem {
	out := make([]entity.LineItem, len(e.lines))
	copy(out, e.lines)
	return out
}

// commitLocked recalcula los totales desde cero y prepara la notificación.
func (e *Engine) commitLocked() (Snapshot, []Listener) {
	e.totals = ComputeTotals(e.lines)
	ls := make([]Listener, 0, len(e.listeners))
	for _, sub := range e.listeners {
		ls = append(ls, sub.fn)
	}
	return Snapshot{Lines: e.copyLinesLocked(), Totals: e.totals}, ls
}

func notify(ls []Listener, snap Snapshot) {
	for _, l := range ls {
		l(snap)
	}
}
