package crud

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

type agentRow struct {
	ID     string `csv:"Agent ID"`
	Name   string `csv:"Name"`
	Active bool   `csv:"Active"`
}

func agentBinding(h *harness, store *agentStore, pageSize int) *Binding[agent, struct{}, bool, agentRow] {
	return &Binding[agent, struct{}, bool, agentRow]{
		Key:      "agents",
		Label:    "Agents",
		ListPath: "/agents",
		Lister: ListConfig[agent, bool, agentRow]{
			Resource:  "Agent",
			FormRoute: "/agents/form",
			Store:     store,
			Access:    agentAccess(),
			PageSize:  pageSize,
			ToView: func(a agent) agentRow {
				return agentRow{ID: strconv.Itoa(a.AgentID), Name: a.Name, Active: a.Status}
			},
			Search:   func(a agent) []string { return []string{a.Name} },
			Category: func(a agent) string { return a.Region },
			Surface:  h.surface,
		},
		ParseStatus: ParseBoolStatus,
		Statuses:    BoolStatuses,
		Summarize: func(rows []agent) Summary {
			return Summary{Stats: []Stat{{Label: "Active", Value: strconv.Itoa(Count(rows, func(a agent) bool { return a.Status }))}}}
		},
	}
}

func manyAgents(n int) []agent {
	out := make([]agent, n)
	for i := range out {
		out[i] = agent{AgentID: i + 1, Name: "Agent " + strconv.Itoa(i+1), Region: "North"}
	}
	return out
}

func TestBinding_ListRendersViewColumns(t *testing.T) {
	t.Parallel()
	h := newHarness()
	store := &agentStore{all: []agent{
		{AgentID: 1, Name: "Ravi", Region: "North", Status: true},
		{AgentID: 2, Name: "Meena", Region: "South"},
	}}
	var s Screen = agentBinding(h, store, 0)

	got, err := s.List(context.Background(), ListOptions{Search: "mee"})
	require.NoError(t, err)
	require.Equal(t, []string{"Agent ID", "Name", "Active"}, got.Headers)
	require.Equal(t, [][]any{{"2", "Meena", "No"}}, got.Rows)
	require.Equal(t, []string{"North", "South"}, got.Categories)
	require.False(t, s.HasForm())
	require.Nil(t, s.FormKeys())
}

func TestBinding_DeleteFindsRowOnLaterPage(t *testing.T) {
	t.Parallel()
	h := newHarness(true, true)
	store := &agentStore{all: manyAgents(25)}
	s := agentBinding(h, store, 10)

	require.NoError(t, s.Delete(context.Background(), "23", ListOptions{}))
	require.Equal(t, []string{"23"}, store.removed)
	require.Len(t, store.queries, 3)
	require.Equal(t, 3, store.queries[2].Page)
	require.Equal(t, "Agent deleted successfully", h.last().Message)
}

func TestBinding_DeleteUnknownRow(t *testing.T) {
	t.Parallel()
	h := newHarness(true, true)
	store := &agentStore{all: manyAgents(3)}
	s := agentBinding(h, store, 0)

	err := s.Delete(context.Background(), "99", ListOptions{})
	require.ErrorIs(t, err, ErrRowNotFound)
	require.Empty(t, store.removed)
	require.Empty(t, h.confirmer.prompts)
}

func TestBinding_SetStatus(t *testing.T) {
	t.Parallel()
	h := newHarness(true)
	store := &agentStore{all: manyAgents(2)}
	s := agentBinding(h, store, 0)

	require.NoError(t, s.SetStatus(context.Background(), "2", "published", ListOptions{}))
	require.Equal(t, []statusCall{{id: "2", status: true}}, store.statusCalls)

	err := s.SetStatus(context.Background(), "2", "maybe", ListOptions{})
	require.ErrorIs(t, err, ErrInvalidStatus)
	require.Len(t, store.statusCalls, 1)
}

func TestBinding_SummaryAndShow(t *testing.T) {
	t.Parallel()
	h := newHarness()
	store := &agentStore{all: []agent{
		{AgentID: 1, Name: "Ravi", Status: true},
		{AgentID: 2, Name: "Meena", Status: true},
		{AgentID: 3, Name: "Arun"},
	}}
	s := agentBinding(h, store, 0)

	sum, err := s.Summary(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []Stat{{Label: "Total", Value: "3"}, {Label: "Active", Value: "2"}}, sum.Stats)

	sum, err = s.Summary(context.Background(), ListOptions{Search: "ravi"})
	require.NoError(t, err)
	require.Equal(t, []Stat{{Label: "Matching", Value: "1"}, {Label: "Active", Value: "1"}}, sum.Stats)

	rec, err := s.Show(context.Background(), "3")
	require.NoError(t, err)
	require.Equal(t, agent{AgentID: 3, Name: "Arun"}, rec)

	_, err = s.Show(context.Background(), "7")
	require.ErrorIs(t, err, ErrRowNotFound)

	_, err = s.Create(context.Background(), url.Values{}, nil)
	require.ErrorIs(t, err, ErrNoForm)
}

func TestBinding_ExportCSV(t *testing.T) {
	t.Parallel()
	h := newHarness()
	store := &agentStore{all: []agent{{AgentID: 1, Name: "Ravi", Status: true}}}
	s := agentBinding(h, store, 0)
	path := filepath.Join(t.TempDir(), "agents.csv")

	require.NoError(t, s.Export(context.Background(), ListOptions{}, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Agent ID,Name,Active")
	require.Contains(t, string(data), "1,Ravi,true")
}

func TestBinding_CreateThroughForm(t *testing.T) {
	t.Parallel()
	h := newHarness()
	store := &formStore[couponRecord]{record: couponRecord{ID: "41", Code: "SAVE10"}}
	cfg := couponConfig(h, store)
	s := &Binding[couponRecord, couponForm, bool, couponRecord]{
		Key:   "coupons",
		Label: "Coupons",
		Form:  &cfg,
		Lister: ListConfig[couponRecord, bool, couponRecord]{
			Access: Accessor[couponRecord, bool]{ID: func(c couponRecord) string { return c.ID }},
		},
	}

	require.Equal(t, []string{"code", "end_date", "hospital_clinic", "start_date", "tags"}, s.FormKeys())

	id, err := s.Create(context.Background(), url.Values{
		"code":            {"save10"},
		"hospital_clinic": {"City Care"},
		"start_date":      {"2024-01-01"},
		"end_date":        {"2024-02-01"},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "41", id)
	require.Len(t, store.creates, 1)
	require.Equal(t, "Coupon created successfully", h.last().Message)
}
