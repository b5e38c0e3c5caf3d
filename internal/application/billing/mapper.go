package billing

import (
	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/invoice"
)

func toLineResponse(l entity.LineItem) dto.LineItemResponse {
	return dto.LineItemResponse{
		ID:          l.ID,
		Quantity:    l.Quantity,
		Description: l.Description,
		UnitPrice:   l.UnitPrice,
		TaxRate:     l.TaxRate,
		TaxAmount:   l.TaxAmount,
		NetAmount:   l.NetAmount,
		GrossAmount: l.GrossAmount,
	}
}

func toLinesResponse(lines []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, toLineResponse(l))
	}
	return out
}

func toTotalsResponse(t entity.InvoiceTotals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Base21: t.Net(entity.TaxRateGeneral),
		Base10: t.Net(entity.TaxRateReduced),
		Base4:  t.Net(entity.TaxRateSuperReduced),
		IVA21:  t.Tax(entity.TaxRateGeneral),
		IVA10:  t.Tax(entity.TaxRateReduced),
		IVA4:   t.Tax(entity.TaxRateSuperReduced),
		Total:  t.GrandTotal,
	}
}

func toSessionResponse(s *Session) *dto.SessionResponse {
	snap := s.Engine.Snapshot()
	return &dto.SessionResponse{
		ID:        s.ID,
		Lines:     toLinesResponse(snap.Lines),
		Totals:    toTotalsResponse(snap.Totals),
		Captcha:   dto.CaptchaResponse{Question: s.Captcha().Question()},
		Submitted: s.Summary() != nil,
	}
}

func toSummaryResponse(sum *InvoiceSummary) *dto.InvoiceSummaryResponse {
	c := sum.Client
	return &dto.InvoiceSummaryResponse{
		SessionID: sum.SessionID,
		Client: dto.ClientDataResponse{
			Number:       c.Number,
			Name:         c.Name,
			Date:         c.Date,
			PostalCode:   c.PostalCode,
			Province:     c.Province,
			Locality:     c.Locality,
			Document:     c.Document,
			DocumentType: string(sum.DocumentType),
			Phone:        c.Phone,
			Email:        c.Email,
		},
		Lines:       toLinesResponse(sum.Lines),
		Totals:      toTotalsResponse(sum.Totals),
		SubmittedAt: sum.SubmittedAt,
	}
}

func toClientData(in dto.ClientDataRequest) entity.ClientData {
	return entity.ClientData{
		Number:     in.Number,
		Name:       in.Name,
		Date:       in.Date,
		PostalCode: in.PostalCode,
		Locality:   in.Locality,
		Document:   in.Document,
		Phone:      in.Phone,
		Email:      in.Email,
	}
}

func toLinePatch(lineID int, in dto.UpdateLineRequest) invoice.LinePatch {
	return invoice.LinePatch{
		ID:          lineID,
		Quantity:    in.Quantity,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		TaxRate:     in.TaxRate,
	}
}
