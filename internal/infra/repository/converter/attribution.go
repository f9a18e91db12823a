package converter

import (
	"storefront-partners/internal/domain/attribution"
	sqlc "storefront-partners/internal/infra/sqlc/generated"
	"storefront-partners/internal/pkg/pgconv"
)

func SessionToUpsertParams(s *attribution.Session) sqlc.UpsertAttributionSessionParams {
	return sqlc.UpsertAttributionSessionParams{
		ID:        s.ID(),
		SessionID: s.SessionID(),
		PartnerID: s.PartnerID(),
		UserID:    pgconv.UUIDPtrToPgtype(s.UserID()),
		Source:    s.Source().String(),
		LastTouch: pgconv.TimeToPgtype(s.LastTouch()),
		ExpiresAt: pgconv.TimeToPgtype(s.ExpiresAt()),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SessionFromRow(row sqlc.AttributionSessions) *attribution.Session {
	return attribution.ReconstructSession(
		row.ID,
		row.SessionID,
		row.PartnerID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		attribution.Source(row.Source),
		pgconv.TimeFromPgtype(row.LastTouch),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func CandidatesFromRows(rows []sqlc.ListAttributionCandidatesRow) []attribution.Candidate {
	out := make([]attribution.Candidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, attribution.Candidate{
			PartnerID:     row.PartnerID,
			PartnerActive: row.PartnerActive,
			SessionID:     row.SessionID,
			LastTouch:     pgconv.TimeFromPgtype(row.LastTouch),
			ExpiresAt:     pgconv.TimeFromPgtype(row.ExpiresAt),
		})
	}
	return out
}

func ReferralEventToParams(e *attribution.ReferralEvent) sqlc.CreateReferralEventParams {
	return sqlc.CreateReferralEventParams{
		ID:         e.ID(),
		EventType:  string(e.Type()),
		PartnerID:  e.PartnerID(),
		UserID:     pgconv.UUIDPtrToPgtype(e.UserID()),
		SessionID:  e.SessionID(),
		OccurredAt: pgconv.TimeToPgtype(e.OccurredAt()),
	}
}

func OrderReferralToParams(o *attribution.OrderReferral) sqlc.CreateOrderReferralParams {
	return sqlc.CreateOrderReferralParams{
		OrderID:         o.OrderID(),
		PartnerID:       pgconv.UUIDPtrToPgtype(o.PartnerID()),
		AttributionType: o.Type().String(),
		SessionID:       o.SessionID(),
		UserID:          pgconv.UUIDPtrToPgtype(o.UserID()),
		CouponCode:      pgconv.StringPtrToPgtype(o.CouponCode()),
		Subtotal:        o.Subtotal(),
		Discount:        o.Discount(),
		Total:           o.Total(),
		ResolvedAt:      pgconv.TimeToPgtype(o.ResolvedAt()),
	}
}

func OrderReferralFromRow(row sqlc.OrderReferrals) *attribution.OrderReferral {
	return attribution.ReconstructOrderReferral(
		row.OrderID,
		pgconv.UUIDPtrFromPgtype(row.PartnerID),
		attribution.Type(row.AttributionType),
		row.SessionID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		pgconv.StringPtrFromPgtype(row.CouponCode),
		attribution.OrderAmounts{Subtotal: row.Subtotal, Discount: row.Discount, Total: row.Total},
		pgconv.TimeFromPgtype(row.ResolvedAt),
	)
}
