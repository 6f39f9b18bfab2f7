package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// AssignOrderRequest is the body of POST /api/orders/assign.
type AssignOrderRequest struct {
	OrderID   string `json:"orderId"`
	PartnerID string `json:"partnerId"`
}

// CustomerPayload carries customer contact fields on the wire.
type CustomerPayload struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ItemPayload carries one order line item on the wire.
type ItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	Customer     CustomerPayload `json:"customer"`
	Area         string          `json:"area"`
	Items        []ItemPayload   `json:"items"`
	ScheduledFor time.Time       `json:"scheduledFor"`
}

// ChangeOrderStatusRequest is the body of PUT /api/orders/:orderId/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ShiftPayload carries a partner shift window on the wire.
type ShiftPayload struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// CreatePartnerRequest is the body of POST /api/partners.
type CreatePartnerRequest struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Areas []string     `json:"areas"`
	Shift ShiftPayload `json:"shift"`
}

// UpdatePartnerRequest is the body of PUT /api/partners/:partnerId.
// Absent or empty fields keep their current values.
type UpdatePartnerRequest struct {
	Name   string        `json:"name"`
	Email  string        `json:"email"`
	Phone  string        `json:"phone"`
	Areas  []string      `json:"areas"`
	Shift  *ShiftPayload `json:"shift"`
	Status *string       `json:"status"`
}

// AssignmentResponse is the wire form of an assignment audit record.
type AssignmentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	PartnerID string    `json:"partnerId"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Reason    *string   `json:"reason"`
}

// OrderResponse is the wire form of an order.
type OrderResponse struct {
	ID           string          `json:"id"`
	Customer     CustomerPayload `json:"customer"`
	Area         string          `json:"area"`
	Items        []ItemPayload   `json:"items"`
	ScheduledFor time.Time       `json:"scheduledFor"`
	CreatedAt    time.Time       `json:"createdAt"`
	Status       string          `json:"status"`
}

// PartnerResponse is the wire form of a delivery partner.
type PartnerResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Areas       []string     `json:"areas"`
	Shift       ShiftPayload `json:"shift"`
	CurrentLoad int          `json:"currentLoad"`
	Status      string       `json:"status"`
}

// MetricsResponse is the wire form of the assignment metrics report.
type MetricsResponse struct {
	TotalAssigned  int            `json:"totalAssigned"`
	SuccessRate    float64        `json:"successRate"`
	AverageTime    float64        `json:"averageTime"`
	FailureReasons map[string]int `json:"failureReasons"`
}

func assignmentToResponse(record *assignment.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        record.ID().String(),
		OrderID:   record.OrderID().String(),
		PartnerID: record.PartnerID().String(),
		Timestamp: record.Timestamp(),
		Status:    record.Status().String(),
		Reason:    record.Reason(),
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	items := make([]ItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemPayload{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return OrderResponse{
		ID: o.ID().String(),
		Customer: CustomerPayload{
			Name:    o.Customer().Name(),
			Phone:   o.Customer().Phone(),
			Address: o.Customer().Address(),
		},
		Area:         o.Area(),
		Items:        items,
		ScheduledFor: o.ScheduledFor(),
		CreatedAt:    o.CreatedAt(),
		Status:       o.Status().String(),
	}
}

func orderReadModelToResponse(o queries.OrderResponse) OrderResponse {
	items := make([]ItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return OrderResponse{
		ID: o.ID.String(),
		Customer: CustomerPayload{
			Name:    o.CustomerName,
			Phone:   o.CustomerPhone,
			Address: o.CustomerAddress,
		},
		Area:         o.Area,
		Items:        items,
		ScheduledFor: o.ScheduledFor,
		CreatedAt:    o.CreatedAt,
		Status:       o.Status,
	}
}

func partnerToResponse(p *partner.DeliveryPartner) PartnerResponse {
	return PartnerResponse{
		ID:    p.ID().String(),
		Name:  p.Name(),
		Email: p.Email(),
		Phone: p.Phone(),
		Areas: p.Areas(),
		Shift: ShiftPayload{
			Start: p.Shift().Start(),
			End:   p.Shift().End(),
		},
		CurrentLoad: p.CurrentLoad(),
		Status:      p.Status().String(),
	}
}

func partnerReadModelToResponse(p queries.PartnerResponse) PartnerResponse {
	return PartnerResponse{
		ID:    p.ID.String(),
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		Areas: p.Areas,
		Shift: ShiftPayload{
			Start: p.ShiftStart,
			End:   p.ShiftEnd,
		},
		CurrentLoad: p.CurrentLoad,
		Status:      p.Status,
	}
}

func metricsToResponse(report services.MetricsReport) MetricsResponse {
	return MetricsResponse{
		TotalAssigned:  report.TotalAssigned,
		SuccessRate:    report.SuccessRate,
		AverageTime:    report.AverageTime,
		FailureReasons: report.FailureReasons,
	}
}
