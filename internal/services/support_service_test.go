package services_test

import (
	"context"
	"net/http"
	"testing"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportReply(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedTickets()
	ctx := context.Background()

	err := svc.SupportService.Reply(ctx, "t-1", &dto.ReplyForm{Message: "  \n "})
	assert.Equal(t, "Cavab boş ola bilməz", formMessage(t, err))
	assert.Empty(t, fb.RequestsTo(http.MethodPost, "/admin/support/t-1/reply"))

	require.NoError(t, svc.SupportService.Reply(ctx, "t-1", &dto.ReplyForm{Message: "Yoxlayırıq"}))

	ticket, err := svc.SupportService.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusReplied, ticket.Status)
	thread := ticket.Thread()
	require.Len(t, thread, 1)
	assert.Equal(t, "Yoxlayırıq", thread[0].Message)
	assert.True(t, thread[0].IsAdmin)
	assert.Equal(t, "Aysel Məmmədova", ticket.RequesterName())
}

func TestSupportList(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedTickets()

	tickets, err := svc.SupportService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tickets, 2)

	_, err = svc.SupportService.Get(context.Background(), "t-404")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
