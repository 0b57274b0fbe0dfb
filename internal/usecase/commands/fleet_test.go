//go:build unit

package commands_test

import (
	"context"
	"testing"

	"fleetbook/internal/domain/boat"
	"fleetbook/internal/domain/member"
	"fleetbook/internal/infra"
	"fleetbook/internal/usecase/commands"
	"fleetbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Read-store views over the shared fake, separate types because the
// booking read store already claims FindByID on fakeStore.
type fakeBoatReads struct {
	store *fakeStore
}

func (r *fakeBoatReads) FindByID(_ context.Context, id uuid.UUID) (*queries.BoatView, error) {
	b, ok := r.store.boats[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "boat not found", nil)
	}
	return &queries.BoatView{
		ID:          b.ID,
		Name:        b.Name,
		HourlyRate:  b.HourlyRate,
		Operational: b.Operational,
	}, nil
}

func (r *fakeBoatReads) FindAll(_ context.Context) ([]*queries.BoatView, error) {
	var boats []*queries.BoatView
	for id := range r.store.boats {
		view, _ := r.FindByID(context.Background(), id)
		boats = append(boats, view)
	}
	return boats, nil
}

type fakeMemberReads struct {
	store *fakeStore
}

func (r *fakeMemberReads) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedMemberView, error) {
	m, ok := r.store.members[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "member not found", nil)
	}
	return &queries.AuthorizedMemberView{
		ID:            m.ID,
		Email:         m.Email,
		Role:          m.Role.String(),
		Standing:      m.Standing.String(),
		SkipperRating: m.SkipperRating.String(),
		Credits:       m.Credits,
	}, nil
}

func (r *fakeMemberReads) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedMemberView, string, error) {
	for id, m := range r.store.members {
		if m.Email == email {
			view, err := r.FindByID(ctx, id)
			return view, "", err
		}
	}
	return nil, "", infra.WrapRepoErr(infra.KindNotFound, "member not found", nil)
}

func newFleetCommands(store *fakeStore) commands.FleetCommands {
	return commands.NewFleetCommands(
		&fakeUoW{store: store},
		queries.NewBoatQueries(&fakeBoatReads{store: store}),
		queries.NewMemberQueries(&fakeMemberReads{store: store}),
	)
}

func TestCreateBoat(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and returns the view", func(t *testing.T) {
		store := newFakeStore()
		cmds := newFleetCommands(store)

		view, err := cmds.CreateBoat(ctx, commands.CreateBoatCommand{
			Name:        "Wanderer",
			HourlyRate:  12,
			Operational: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Wanderer", view.Name)
		assert.Equal(t, 12, view.HourlyRate)
		assert.Len(t, store.boats, 1)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		store := newFakeStore()
		cmds := newFleetCommands(store)

		_, err := cmds.CreateBoat(ctx, commands.CreateBoatCommand{Name: "  ", HourlyRate: 5})
		assert.ErrorIs(t, err, boat.ErrEmptyBoatName)
		assert.Empty(t, store.boats)
	})
}

func TestRegisterMember(t *testing.T) {
	ctx := context.Background()

	valid := commands.RegisterMemberCommand{
		Email:         "new@example.com",
		Password:      "a-long-password",
		Role:          "member",
		Standing:      "good",
		SkipperRating: "day",
		Credits:       50,
	}

	t.Run("persists with a hashed password", func(t *testing.T) {
		store := newFakeStore()
		cmds := newFleetCommands(store)

		view, err := cmds.RegisterMember(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", view.Email)
		assert.Equal(t, "day", view.SkipperRating)
		assert.Equal(t, 50, view.Credits)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		store := newFakeStore()
		cmds := newFleetCommands(store)

		_, err := cmds.RegisterMember(ctx, valid)
		require.NoError(t, err)

		_, err = cmds.RegisterMember(ctx, valid)
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.Len(t, store.members, 1)
	})

	t.Run("invalid rating is rejected before any write", func(t *testing.T) {
		store := newFakeStore()
		cmds := newFleetCommands(store)

		cmd := valid
		cmd.SkipperRating = "oceanic"
		_, err := cmds.RegisterMember(ctx, cmd)
		assert.ErrorIs(t, err, member.ErrInvalidSkipperRating)
		assert.Empty(t, store.members)
	})
}
