package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReplaceSpecialPricesCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	profile := newStoredProfile(t, kernel.NewUUID())

	cmd, err := commands.NewReplaceSpecialPricesCommand(profile.ID(), []pricing.SpecialPrice{
		mustSpecialPrice(t, "garden gate", 95),
		mustSpecialPrice(t, "mailbox post", 35),
	})
	require.NoError(t, err)

	mockRepo := new(MockPricingProfileRepository)
	mockUoW := new(MockPricingUoW)
	mockFactory := new(MockPricingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PricingProfileRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, profile.ID()).Return(profile, nil).Once(),
		mockRepo.On("Update", ctx, profile).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceSpecialPricesCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.Len(t, profile.SpecialPrices(), 2)
	assert.Equal(t, "garden gate", profile.SpecialPrices()[0].Name())
	assert.Equal(t, "mailbox post", profile.SpecialPrices()[1].Name())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestReplaceSpecialPricesCommandHandler_Handle_ClearsOverrides(t *testing.T) {
	// Arrange
	ctx := t.Context()
	profile := newStoredProfile(t, kernel.NewUUID())
	require.NotEmpty(t, profile.SpecialPrices())

	cmd, err := commands.NewReplaceSpecialPricesCommand(profile.ID(), nil)
	require.NoError(t, err)

	mockRepo := new(MockPricingProfileRepository)
	mockUoW := new(MockPricingUoW)
	mockFactory := new(MockPricingUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PricingProfileRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, profile.ID()).Return(profile, nil).Once(),
		mockRepo.On("Update", ctx, profile).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewReplaceSpecialPricesCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, profile.SpecialPrices())
	mockUoW.AssertExpectations(t)
}

func TestReplaceSpecialPricesCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.ReplaceSpecialPricesCommand

	mockFactory := new(MockPricingUoWFactory)
	handler := commands.NewReplaceSpecialPricesCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrReplaceSpecialPricesCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
