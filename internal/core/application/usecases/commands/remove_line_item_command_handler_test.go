package commands_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNoteUoW struct {
	mock.Mock
}

func (m *MockNoteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNoteUoW) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryNoteRepository)
}

type MockNoteUoWFactory struct {
	mock.Mock
}

func (m *MockNoteUoWFactory) Create() commands.NoteUoW {
	args := m.Called()
	return args.Get(0).(commands.NoteUoW)
}

func TestRemoveLineItemCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	note := newStoredDraftNote(t, kernel.NewUUID())
	item, err := deliverynote.NewLineItem(
		kernel.NewUUID(), "bracket", mustClassifiedColor(t, "RAL 9010"), 1, kernel.NewEmptyMeasurements())
	require.NoError(t, err)
	require.NoError(t, note.AddItem(item))

	cmd, err := commands.NewRemoveLineItemCommand(note.ID(), item.ID())
	require.NoError(t, err)

	mockRepo := new(MockDeliveryNoteRepository)
	mockUoW := new(MockNoteUoW)
	mockFactory := new(MockNoteUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DeliveryNoteRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, note.ID()).Return(note, nil).Once(),
		mockRepo.On("Update", ctx, note).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRemoveLineItemCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, note.HasItems())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRemoveLineItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	note := newStoredDraftNote(t, kernel.NewUUID())

	cmd, err := commands.NewRemoveLineItemCommand(note.ID(), kernel.NewUUID())
	require.NoError(t, err)

	mockRepo := new(MockDeliveryNoteRepository)
	mockUoW := new(MockNoteUoW)
	mockFactory := new(MockNoteUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("DeliveryNoteRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, note.ID()).Return(note, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRemoveLineItemCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, deliverynote.ErrItemNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestRemoveLineItemCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RemoveLineItemCommand

	mockFactory := new(MockNoteUoWFactory)
	handler := commands.NewRemoveLineItemCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRemoveLineItemCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
