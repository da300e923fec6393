package crud

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

func newAgentList(h *harness, store *agentStore, pageSize int) *ListController[agent, bool, string] {
	return NewList(ListConfig[agent, bool, string]{
		Resource:  "Agent",
		FormRoute: "/agents/form",
		Store:     store,
		Access:    agentAccess(),
		ToView:    func(a agent) string { return fmt.Sprintf("%d:%s", a.AgentID, a.Name) },
		PageSize:  pageSize,
		Search:    func(a agent) []string { return []string{a.Name, a.Region} },
		Category:  func(a agent) string { return a.Region },
		Surface:   h.surface,
	})
}

func TestList_AgentStatusToggle(t *testing.T) {
	t.Parallel()

	h := newHarness(true)
	store := &agentStore{all: []agent{
		{AgentID: 1, Name: "Asha", Region: "North", Status: true},
		{AgentID: 2, Name: "Ravi", Region: "South", Status: false},
	}}
	list := newAgentList(h, store, 0)
	require.NoError(t, list.Load(context.Background()))

	require.NoError(t, list.SetStatus(context.Background(), "2", true))

	require.Equal(t, []statusCall{{id: "2", status: true}}, store.statusCalls)
	require.Len(t, h.confirmer.prompts, 1)
	require.Equal(t, []agent{
		{AgentID: 1, Name: "Asha", Region: "North", Status: true},
		{AgentID: 2, Name: "Ravi", Region: "South", Status: true},
	}, list.Rows())
	require.Equal(t, LevelSuccess, h.last().Level)
	require.Len(t, store.queries, 1)
}

func TestList_StatusToggleCancelled(t *testing.T) {
	t.Parallel()

	h := newHarness(false)
	store := &agentStore{all: []agent{{AgentID: 2, Name: "Ravi"}}}
	list := newAgentList(h, store, 0)
	require.NoError(t, list.Load(context.Background()))

	err := list.SetStatus(context.Background(), "2", true)
	require.ErrorIs(t, err, ErrCancelled)
	require.Empty(t, store.statusCalls)
	require.False(t, list.Rows()[0].Status)
	require.Equal(t, Notice{Level: LevelInfo, Resource: "Agent", Action: "status", Message: "Action cancelled"}, h.last())
}

func TestList_StatusFailureLeavesRowUntouched(t *testing.T) {
	t.Parallel()

	h := newHarness(true)
	store := &agentStore{
		all:       []agent{{AgentID: 2, Name: "Ravi"}},
		statusErr: &restclient.Error{Kind: restclient.KindStatus, Status: 409, Message: "Agent is locked"},
	}
	list := newAgentList(h, store, 0)
	require.NoError(t, list.Load(context.Background()))

	require.Error(t, list.SetStatus(context.Background(), "2", true))
	require.False(t, list.Rows()[0].Status)
	require.Equal(t, LevelError, h.last().Level)
	require.Equal(t, "Agent is locked", h.last().Message)
}

func TestList_DeleteNeedsTwoConfirmations(t *testing.T) {
	t.Parallel()

	t.Run("second prompt declined", func(t *testing.T) {
		t.Parallel()
		h := newHarness(true, false)
		store := &agentStore{all: []agent{{AgentID: 1}, {AgentID: 2}}}
		list := newAgentList(h, store, 0)
		require.NoError(t, list.Load(context.Background()))

		err := list.Delete(context.Background(), "1")
		require.ErrorIs(t, err, ErrCancelled)
		require.Empty(t, store.removed)
		require.Len(t, h.confirmer.prompts, 2)
		require.Len(t, list.Rows(), 2)
		require.Equal(t, LevelInfo, h.last().Level)
	})

	t.Run("first prompt declined", func(t *testing.T) {
		t.Parallel()
		h := newHarness(false)
		store := &agentStore{all: []agent{{AgentID: 1}}}
		list := newAgentList(h, store, 0)
		require.NoError(t, list.Load(context.Background()))

		require.ErrorIs(t, list.Delete(context.Background(), "1"), ErrCancelled)
		require.Len(t, h.confirmer.prompts, 1)
		require.Empty(t, store.removed)
	})

	t.Run("both accepted", func(t *testing.T) {
		t.Parallel()
		h := newHarness(true, true)
		store := &agentStore{all: []agent{{AgentID: 1}, {AgentID: 2}, {AgentID: 3}}}
		list := newAgentList(h, store, 0)
		require.NoError(t, list.Load(context.Background()))

		require.NoError(t, list.Delete(context.Background(), "2"))
		require.Equal(t, []string{"2"}, store.removed)
		require.Equal(t, []agent{{AgentID: 1}, {AgentID: 3}}, list.Rows())
		require.Equal(t, 2, list.TotalItems())
		require.Len(t, store.queries, 1)
		require.Equal(t, "Agent deleted successfully", h.last().Message)
	})
}

func TestList_DeleteUnknownRow(t *testing.T) {
	t.Parallel()

	h := newHarness(true, true)
	list := newAgentList(h, &agentStore{}, 0)
	require.ErrorIs(t, list.Delete(context.Background(), "9"), ErrRowNotFound)
	require.Empty(t, h.confirmer.prompts)
}

func TestList_SearchAndCategory(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &agentStore{all: []agent{
		{AgentID: 1, Name: "Asha Verma", Region: "North"},
		{AgentID: 2, Name: "Ravi Kumar", Region: "South"},
		{AgentID: 3, Name: "ASHOK", Region: "South"},
	}}
	list := newAgentList(h, store, 0)
	require.NoError(t, list.Load(context.Background()))

	list.SetSearch("")
	require.Len(t, list.Filtered(), 3)

	list.SetSearch("ash")
	require.Equal(t, []string{"1:Asha Verma", "3:ASHOK"}, list.Views())

	list.SetSearch("SOUTH")
	require.Len(t, list.Filtered(), 2)

	list.SetSearch("")
	list.SetCategory("south")
	require.Len(t, list.Filtered(), 2)
	list.SetCategory("all")
	require.Len(t, list.Filtered(), 3)

	require.Equal(t, []string{"North", "South"}, list.Categories())
	require.Len(t, store.queries, 1)
}

func TestList_Pagination(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &agentStore{}
	for i := 1; i <= 25; i++ {
		store.all = append(store.all, agent{AgentID: i})
	}
	list := newAgentList(h, store, 10)
	ctx := context.Background()

	require.NoError(t, list.Load(ctx))
	require.Equal(t, restclient.Query{Page: 1, Limit: 10}, store.queries[0])
	require.Equal(t, 25, list.TotalItems())
	require.Equal(t, 3, list.PageCount())
	require.False(t, list.HasPrev())
	require.True(t, list.HasNext())

	require.NoError(t, list.Next(ctx))
	require.Equal(t, 2, list.Page())
	require.Equal(t, restclient.Query{Page: 2, Limit: 10}, store.queries[1])

	require.NoError(t, list.GoTo(ctx, 7))
	require.Equal(t, 3, list.Page())
	require.Len(t, list.Rows(), 5)
	require.False(t, list.HasNext())

	require.NoError(t, list.Next(ctx))
	require.Len(t, store.queries, 3)

	require.NoError(t, list.Prev(ctx))
	require.Equal(t, 2, list.Page())
}

func TestList_LoadFailureKeepsRows(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &agentStore{all: []agent{{AgentID: 1}}}
	list := newAgentList(h, store, 0)
	require.NoError(t, list.Load(context.Background()))

	store.listErr = errors.New("dial tcp: connection refused")
	require.Error(t, list.Load(context.Background()))
	require.Len(t, list.Rows(), 1)
	require.Equal(t, LevelError, h.last().Level)
	require.Equal(t, "load", h.last().Action)
}

func TestList_MenusAndEdit(t *testing.T) {
	t.Parallel()

	h := newHarness()
	list := newAgentList(h, &agentStore{}, 0)

	list.ToggleMenu("1")
	require.True(t, list.MenuOpen("1"))
	list.ToggleMenu("2")
	require.False(t, list.MenuOpen("1"))
	require.True(t, list.MenuOpen("2"))
	list.ToggleMenu("2")
	require.False(t, list.MenuOpen("2"))

	list.ToggleMenu("3")
	list.Edit(context.Background(), "3")
	require.False(t, list.MenuOpen("3"))
	require.Equal(t, []string{"/agents/form?id=3"}, h.navigator.routes)
}

func TestAggregates(t *testing.T) {
	t.Parallel()

	rows := []agent{
		{AgentID: 1, Region: "North", Status: true},
		{AgentID: 2, Region: "South"},
		{AgentID: 3, Region: "South", Status: true},
		{AgentID: 4},
	}
	require.Equal(t, 2, Count(rows, func(a agent) bool { return a.Status }))
	require.True(t, decimal.NewFromInt(10).Equal(Sum(rows, func(a agent) decimal.Decimal { return decimal.NewFromInt(int64(a.AgentID)) })))

	series := GroupCount(rows, func(a agent) string { return a.Region })
	require.Len(t, series, 3)
	require.Equal(t, "North", series[0].Label)
	require.Equal(t, "Other", series[1].Label)
	require.Equal(t, "South", series[2].Label)
	require.True(t, series[2].Value.Equal(decimal.NewFromInt(2)))
}
