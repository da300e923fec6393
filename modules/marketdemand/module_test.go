package marketdemand_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/modules/marketdemand"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/marketdemand/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/testkit"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
)

func demandValues() url.Values {
	return url.Values{
		"requester_name":           {"Farhan Ali"},
		"business_name":            {"Ali Medicals"},
		"city":                     {"Hubballi"},
		"phone":                    {"+91 98450 11223"},
		"products[0].product_name": {"Insulin glargine 100IU"},
		"products[0].quantity":     {"40"},
		"products[0].unit":         {"Units"},
	}
}

func TestMarketDemandScreen_NeedsAtLeastOneProduct(t *testing.T) {
	t.Parallel()
	env := testkit.New(t, marketdemand.NewModule())

	values := demandValues()
	values.Del("products[0].product_name")
	values.Del("products[0].quantity")
	values.Del("products[0].unit")
	_, err := env.Screen(t, "market-demands").Create(context.Background(), values, nil)

	var verrs serrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "Products must have at least 1 item(s)", verrs["Products"])
	require.Empty(t, env.Backend.Records(restapi.MarketDemandResource))
}

func TestMarketDemandScreen_RowQuantity(t *testing.T) {
	t.Parallel()
	env := testkit.New(t, marketdemand.NewModule())

	values := demandValues()
	values.Set("products[1].product_name", "Metformin 500mg")
	values.Set("products[1].quantity", "0")
	values.Set("products[1].unit", "strips")
	_, err := env.Screen(t, "market-demands").Create(context.Background(), values, nil)

	var verrs serrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "Products row 2 quantity must be 1 or more", verrs["Products[1].Quantity"])
}

func TestMarketDemandScreen_CreateThenAdvanceStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := testkit.New(t, marketdemand.NewModule())
	screen := env.Screen(t, "market-demands")
	require.Equal(t, []string{"pending", "in_progress", "fulfilled"}, screen.StatusChoices())

	id, err := screen.Create(ctx, demandValues(), nil)
	require.NoError(t, err)
	rec := env.Backend.Records(restapi.MarketDemandResource)[0]
	require.Equal(t, "pending", rec["status"])
	require.Equal(t, []any{map[string]any{
		"product_name": "Insulin glargine 100IU", "quantity": float64(40), "unit": "units",
	}}, rec["products"])

	err = screen.SetStatus(ctx, id, "lost", crud.ListOptions{})
	require.ErrorIs(t, err, crud.ErrInvalidStatus)
	require.Empty(t, env.Confirmer.Prompts)

	env.Confirmer.Answer(true)
	require.NoError(t, screen.SetStatus(ctx, id, "In progress", crud.ListOptions{}))
	require.Equal(t, "in_progress", env.Backend.Records(restapi.MarketDemandResource)[0]["status"])
	require.Equal(t, "Market demand status updated", env.LastNotice().Message)

	listing, err := screen.List(ctx, crud.ListOptions{Category: "In progress"})
	require.NoError(t, err)
	require.Len(t, listing.Rows, 1)
	require.Equal(t, "Insulin glargine 100IU x40 units", listing.Rows[0][4])
	require.Equal(t, 40, listing.Rows[0][5])
}

func TestMarketDemandScreen_Summary(t *testing.T) {
	t.Parallel()
	env := testkit.New(t, marketdemand.NewModule())
	mockdata.RegisterMocks(env.Backend, true)

	sum, err := env.Screen(t, "market-demands").Summary(context.Background(), crud.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []crud.Stat{
		{Label: "Total", Value: "2"},
		{Label: "Open", Value: "1"},
		{Label: "Requested quantity", Value: "220"},
	}, sum.Stats)

	byStatus := sum.Series[0]
	require.Equal(t, "Requests by status", byStatus.Name)
	require.Equal(t, "Fulfilled", byStatus.Points[0].Label)
	require.Equal(t, "Pending", byStatus.Points[1].Label)

	byCity := sum.Series[1]
	require.Equal(t, "Hubballi", byCity.Points[0].Label)
	require.Equal(t, "160", byCity.Points[0].Value.String())
	require.Equal(t, "60", byCity.Points[1].Value.String())
}
