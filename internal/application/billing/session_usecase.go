package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/invoice"
	"github.com/jhoicas/facturador/internal/domain/validation"
	"github.com/jhoicas/facturador/pkg/logger"
	"github.com/jhoicas/facturador/pkg/nif"
)

// SubmissionError factura rechazada al enviarla. Contiene los errores por campo
// y la nueva pregunta del captcha.
type SubmissionError struct {
	Report  validation.Report
	Captcha Captcha
}

func (e *SubmissionError) Error() string { return e.Report.Err().Error() }

// Unwrap permite errors.Is con domain.ErrInvalidInput y validation.ErrInvalidInvoice.
func (e *SubmissionError) Unwrap() []error {
	return []error{domain.ErrInvalidInput, validation.ErrInvalidInvoice}
}

// SessionUseCase casos de uso de una factura en edición: líneas, captcha y envío.
type SessionUseCase struct {
	store      SessionStore
	validator  *validation.Validator
	log        *logger.Logger
	newCaptcha func() Captcha
	now        func() time.Time
}

// SessionOption ajusta el caso de uso (tests).
type SessionOption func(*SessionUseCase)

// WithCaptchaSource reemplaza el generador de captchas.
func WithCaptchaSource(f func() Captcha) SessionOption {
	return func(uc *SessionUseCase) { uc.newCaptcha = f }
}

// WithNow reemplaza el reloj usado para fechar sesiones y envíos.
func WithNow(f func() time.Time) SessionOption {
	return func(uc *SessionUseCase) { uc.now = f }
}

// NewSessionUseCase construye el caso de uso.
func NewSessionUseCase(store SessionStore, validator *validation.Validator, log *logger.Logger, opts ...SessionOption) *SessionUseCase {
	uc := &SessionUseCase{
		store:      store,
		validator:  validator,
		log:        log,
		newCaptcha: NewCaptcha,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create abre una sesión nueva con una línea por defecto.
func (uc *SessionUseCase) Create() (*dto.SessionResponse, error) {
	s := NewSession(uuid.New().String(), uc.newCaptcha(), uc.now())
	id := s.ID
	s.Engine.Subscribe(func(snap invoice.Snapshot) {
		uc.log.Debug().
			Str("session_id", id).
			Int("lines", len(snap.Lines)).
			Str("total", snap.Totals.GrandTotal.StringFixed(2)).
			Msg("factura recalculada")
	})
	if err := uc.store.Save(s); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	uc.log.Info().Str("session_id", id).Int("active", uc.store.Len()).Msg("sesión creada")
	return toSessionResponse(s), nil
}

// Touch comprueba que la sesión existe y renueva su caducidad.
func (uc *SessionUseCase) Touch(id string) error {
	_, err := uc.store.Get(id)
	return err
}

// Get estado actual de la sesión.
func (uc *SessionUseCase) Get(id string) (*dto.SessionResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(s), nil
}

// Delete cierra la sesión.
func (uc *SessionUseCase) Delete(id string) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("session_id", id).Msg("sesión cerrada")
	return nil
}

// AddLine añade una línea por defecto. Se rechaza con domain.ErrInvalidInput
// mientras la última línea no tenga descripción y cantidad positiva.
func (uc *SessionUseCase) AddLine(id string) (*dto.LineResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	line, ok := s.Engine.AddLineAfter(validation.IsLineComplete)
	if !ok {
		return nil, fmt.Errorf("%w: complete la línea %d antes de añadir otra", domain.ErrInvalidInput, line.ID)
	}
	return &dto.LineResponse{Line: toLineResponse(line), Totals: toTotalsResponse(s.Engine.Totals())}, nil
}

// UpdateLine modifica los campos presentes de la línea y devuelve los importes recalculados.
func (uc *SessionUseCase) UpdateLine(id string, lineID int, in dto.UpdateLineRequest) (*dto.LineResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	line, err := s.Engine.UpdateLine(toLinePatch(lineID, in))
	if err != nil {
		return nil, fmt.Errorf("línea %d: %w", lineID, err)
	}
	return &dto.LineResponse{Line: toLineResponse(line), Totals: toTotalsResponse(s.Engine.Totals())}, nil
}

// RemoveLine elimina la línea. Un ID inexistente no modifica la factura.
func (uc *SessionUseCase) RemoveLine(id string, lineID int) (*dto.SessionResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.Engine.RemoveLine(lineID)
	return toSessionResponse(s), nil
}

// Reset empieza una factura nueva en la misma sesión: una línea por defecto,
// captcha nuevo y sin resumen previo.
func (uc *SessionUseCase) Reset(id string) (*dto.SessionResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	s.Engine.Reset()
	s.mu.Lock()
	s.captcha = uc.newCaptcha()
	s.summary = nil
	s.mu.Unlock()
	return toSessionResponse(s), nil
}

// Preview calcula los importes de una línea sin sesión.
func (uc *SessionUseCase) Preview(in dto.PreviewLineRequest) dto.PreviewLineResponse {
	a := invoice.ComputeLineDerived(invoice.LineInput{
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		TaxRate:   in.TaxRate,
	})
	return dto.PreviewLineResponse{NetAmount: a.Net, TaxAmount: a.Tax, GrossAmount: a.Gross}
}

// NewCaptcha genera una pregunta nueva para la sesión.
func (uc *SessionUseCase) NewCaptcha(id string) (*dto.CaptchaResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	c := uc.newCaptcha()
	s.mu.Lock()
	s.captcha = c
	s.mu.Unlock()
	return &dto.CaptchaResponse{Question: c.Question()}, nil
}

// Submit valida cabecera, captcha y líneas. Si algo falla devuelve *SubmissionError
// con un captcha nuevo; si no, guarda y devuelve el resumen de la factura.
// Cada intento consume el captcha vigente.
func (uc *SessionUseCase) Submit(id string, in dto.SubmitInvoiceRequest) (*dto.InvoiceSummaryResponse, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	client := toClientData(in.Client)
	snap := s.Engine.Snapshot()
	report := uc.validator.Validate(client, snap.Lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.captcha.Check(in.Captcha) {
		report.Errors[validation.FieldCaptcha] = true
	}
	s.captcha = uc.newCaptcha()

	if !report.Valid() {
		uc.log.Debug().Str("session_id", id).Strs("errors", report.Messages()).Msg("factura rechazada")
		return nil, &SubmissionError{Report: report, Captcha: s.captcha}
	}

	client.Province = validation.ProvinceFor(client.PostalCode)
	s.summary = &InvoiceSummary{
		SessionID:    s.ID,
		Client:       client,
		DocumentType: nif.Classify(client.Document),
		Lines:        snap.Lines,
		Totals:       snap.Totals,
		SubmittedAt:  uc.now(),
	}
	uc.log.Info().
		Str("session_id", id).
		Str("numero", client.Number).
		Str("total", snap.Totals.GrandTotal.StringFixed(2)).
		Msg("factura aceptada")
	return toSummaryResponse(s.summary), nil
}

// Summary último resumen aceptado. domain.ErrConflict si la factura no se ha enviado.
func (uc *SessionUseCase) Summary(id string) (*InvoiceSummary, error) {
	s, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	sum := s.Summary()
	if sum == nil {
		return nil, fmt.Errorf("%w: la factura aún no se ha enviado", domain.ErrConflict)
	}
	return sum, nil
}
