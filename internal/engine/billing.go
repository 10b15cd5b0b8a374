package engine

import "context"

// InvoiceLine is one consumption entry on an invoice with its
// extended amount.
type InvoiceLine struct {
	ItemName   string `json:"item_name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
}

// Invoice is the bill for a stay: the room charge at the rate
// snapshotted when the booking was created, plus all consumptions.
// It stands in for the PDF a real system would render.
type Invoice struct {
	BookingID              string        `json:"booking_id"`
	RoomName               string        `json:"room_name"`
	RoomLocation           string        `json:"room_location"`
	ClientName             string        `json:"client_name,omitempty"`
	ClientEmail            string        `json:"client_email,omitempty"`
	StartDate              string        `json:"start_date"`
	EndDate                string        `json:"end_date"`
	Nights                 int64         `json:"nights"`
	NightlyRateCents       int64         `json:"nightly_rate_cents"`
	RoomTotalCents         int64         `json:"room_total_cents"`
	Lines                  []InvoiceLine `json:"consumptions"`
	ConsumptionsTotalCents int64         `json:"consumptions_total_cents"`
	GrandTotalCents        int64         `json:"grand_total_cents"`
}

// BuildInvoice computes the bill for a booking.  At least one night
// is always charged.  Pure read.
func (e *Engine) BuildInvoice(ctx context.Context, bookingID string) (Invoice, error) {
	room, b, err := e.findBooking(ctx, bookingID)
	if err != nil {
		return Invoice{}, err
	}
	d := e.detail(ctx, room, b)

	n := int64(1)
	if start, err1 := parseDay(b.StartDate); err1 == nil {
		if end, err2 := parseDay(b.EndDate); err2 == nil {
			n = nights(start, end)
		}
	}

	inv := Invoice{
		BookingID:        b.BookingID,
		RoomName:         room.Name,
		RoomLocation:     room.Location,
		ClientName:       d.ClientName,
		ClientEmail:      d.ClientEmail,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
		Nights:           n,
		NightlyRateCents: b.BookedPriceCents,
		RoomTotalCents:   n * b.BookedPriceCents,
		Lines:            make([]InvoiceLine, 0, len(b.Consumptions)),
	}
	for _, c := range b.Consumptions {
		line := InvoiceLine{
			ItemName:   c.ItemName,
			PriceCents: c.PriceCents,
			Quantity:   c.Quantity,
			TotalCents: c.PriceCents * int64(c.Quantity),
		}
		inv.Lines = append(inv.Lines, line)
		inv.ConsumptionsTotalCents += line.TotalCents
	}
	inv.GrandTotalCents = inv.RoomTotalCents + inv.ConsumptionsTotalCents
	return inv, nil
}
