package usecases

import (
	"context"

	"inkwell/internal/application/ticket/dto"
	"inkwell/internal/domain/ticket"
	vo "inkwell/internal/domain/ticket/valueobjects"
	"inkwell/internal/shared/logger"
)

type mockTicketRepository struct {
	saveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	updateForwardingStatusFunc func(ctx context.Context, ticketID uint, status vo.ForwardingStatus) error

	saveCalls   int
	updateCalls int
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	m.saveCalls++
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) UpdateForwardingStatus(ctx context.Context, ticketID uint, status vo.ForwardingStatus) error {
	m.updateCalls++
	if m.updateForwardingStatusFunc != nil {
		return m.updateForwardingStatusFunc(ctx, ticketID, status)
	}
	return nil
}

type mockForwarder struct {
	forwardFunc func(ctx context.Context, payload dto.TicketPayload) bool

	calls    int
	payloads []dto.TicketPayload
}

func (m *mockForwarder) Forward(ctx context.Context, payload dto.TicketPayload) bool {
	m.calls++
	m.payloads = append(m.payloads, payload)
	if m.forwardFunc != nil {
		return m.forwardFunc(ctx, payload)
	}
	return true
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
