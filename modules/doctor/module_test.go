package doctor_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/modules/doctor"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/mockdata"
	"github.com/iota-uz/pharma-admin/modules/doctor/infrastructure/restapi"
	"github.com/iota-uz/pharma-admin/modules/testkit"
	"github.com/iota-uz/pharma-admin/pkg/crud"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func doctorValues() url.Values {
	return url.Values{
		"name":             {"Dr. Asha Menon"},
		"hospital_clinic":  {"City Care Hospital"},
		"specialization":   {"Cardiology"},
		"qualification":    {"MBBS, MD"},
		"phone":            {"+91 98450 11223"},
		"email":            {"asha@citycare.in"},
		"city":             {"Kochi"},
		"experience_years": {"14"},
		"designations[0]":  {"Senior Consultant"},
		"designations[1]":  {"HOD Cardiology"},
	}
}

func TestDoctorScreen_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := testkit.New(t, doctor.NewModule())
	screen := env.Screen(t, "doctors")

	id, err := screen.Create(ctx, doctorValues(), map[string][]upload.File{
		"photo": {upload.FromBytes("asha.png", pngBytes)},
	})
	require.NoError(t, err)
	require.Equal(t, "Doctor created successfully", env.LastNotice().Message)
	require.Equal(t, []string{"/doctors"}, env.Routes())

	stored := env.Backend.Records(restapi.DoctorResource)
	require.Len(t, stored, 1)
	require.Equal(t, "City Care Hospital", stored[0]["hospital_clinic"])
	require.Equal(t, "/media/doctor/"+id+"/photo/asha.png", stored[0]["photo"])

	require.NoError(t, screen.Update(ctx, id, url.Values{"city": {"Chennai"}}, nil))
	stored = env.Backend.Records(restapi.DoctorResource)
	require.Equal(t, "Chennai", stored[0]["city"])
	require.Equal(t, "Dr. Asha Menon", stored[0]["name"])
	require.Equal(t, "/media/doctor/"+id+"/photo/asha.png", stored[0]["photo"])

	env.Confirmer.Answer(true)
	require.NoError(t, screen.SetStatus(ctx, id, "publish", crud.ListOptions{}))
	require.Equal(t, true, env.Backend.Records(restapi.DoctorResource)[0]["status"])

	listing, err := screen.List(ctx, crud.ListOptions{Search: "cardio"})
	require.NoError(t, err)
	require.Len(t, listing.Rows, 1)
	require.Contains(t, listing.Rows[0], "Published")

	env.Confirmer.Answer(true, true)
	require.NoError(t, screen.Delete(ctx, id, crud.ListOptions{}))
	require.Empty(t, env.Backend.Records(restapi.DoctorResource))
	require.Equal(t, "Doctor deleted successfully", env.LastNotice().Message)
}

func TestDoctorScreen_RejectsOversizedPhoto(t *testing.T) {
	t.Parallel()
	env := testkit.New(t, doctor.NewModule())
	screen := env.Screen(t, "doctors")

	big := append(append([]byte(nil), pngBytes...), make([]byte, 2*upload.MiB)...)
	_, err := screen.Create(context.Background(), doctorValues(), map[string][]upload.File{
		"photo": {upload.FromBytes("big.png", big)},
	})
	var verrs serrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Contains(t, verrs, "photo")
	require.Empty(t, env.Backend.Records(restapi.DoctorResource))
}

func TestDoctorScreen_Summary(t *testing.T) {
	t.Parallel()
	env := testkit.New(t, doctor.NewModule())
	mockdata.RegisterMocks(env.Backend, true)

	sum, err := env.Screen(t, "doctors").Summary(context.Background(), crud.ListOptions{})
	require.NoError(t, err)
	require.Equal(t, []crud.Stat{
		{Label: "Total", Value: "3"},
		{Label: "Published", Value: "2"},
		{Label: "Unpublished", Value: "1"},
	}, sum.Stats)
	require.Len(t, sum.Series, 1)
	require.Len(t, sum.Series[0].Points, 3)
}
