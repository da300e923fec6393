package crud

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/pkg/constants"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
	"github.com/iota-uz/pharma-admin/pkg/serrors"
	"github.com/iota-uz/pharma-admin/pkg/upload"
)

type couponRecord struct {
	ID             string   `json:"id"`
	Code           string   `json:"code"`
	HospitalClinic string   `json:"hospital_clinic"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Tags           []string `json:"tags"`
	Banner         string   `json:"banner"`
}

type couponForm struct {
	Code           string       `json:"code" validate:"required,couponcode"`
	HospitalClinic string       `json:"hospital_clinic" validate:"required,max=40"`
	StartDate      string       `json:"start_date" validate:"required,date"`
	EndDate        string       `json:"end_date" validate:"required,date"`
	Tags           Rows[string] `json:"tags" validate:"dive,required"`
}

func (f *couponForm) Normalize() {
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
}

func (f *couponForm) CrossCheck() serrors.ValidationErrors {
	errs := serrors.ValidationErrors{}
	start, err1 := constants.ParseDate(f.StartDate)
	end, err2 := constants.ParseDate(f.EndDate)
	if err1 == nil && err2 == nil && end.Before(start) {
		errs.Add("EndDate", "End date cannot be before start date")
	}
	return errs
}

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func couponConfig(h *harness, store *formStore[couponRecord]) FormConfig[couponRecord, couponForm] {
	return FormConfig[couponRecord, couponForm]{
		Resource:  "Coupon",
		ListRoute: "/coupons",
		Store:     store,
		FromRecord: func(r couponRecord) couponForm {
			return couponForm{
				Code:           r.Code,
				HospitalClinic: r.HospitalClinic,
				StartDate:      r.StartDate,
				EndDate:        r.EndDate,
				Tags:           r.Tags,
			}
		},
		Files: []upload.FieldSpec{
			{Field: "banner", Label: "Banner", Accept: upload.Images, MaxSize: upload.KiB},
		},
		Assets:   func(r couponRecord) map[string]string { return map[string]string{"banner": r.Banner} },
		AssetURL: func(p string) string { return "https://api.test/" + strings.TrimLeft(p, "/") },
		Surface:  h.surface,
	}
}

func validCouponValues() url.Values {
	return url.Values{
		"code":            {"save10"},
		"hospital_clinic": {"City Care"},
		"start_date":      {"2024-01-01"},
		"end_date":        {"2024-01-31"},
		"tags[0]":         {"festive"},
		"tags[1]":         {"summer"},
	}
}

func TestForm_CreateSendsEveryFieldOnce(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{record: couponRecord{ID: "5"}}
	form := NewForm(couponConfig(h, store), "")
	require.Equal(t, ModeCreate, form.Mode())
	require.NoError(t, form.Load(context.Background()))
	require.Zero(t, store.gets)

	require.NoError(t, form.Apply(validCouponValues()))
	require.True(t, form.Touched("HospitalClinic"))
	require.True(t, form.Touched("Tags"))

	rec, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, "5", rec.ID)

	require.Len(t, store.creates, 1)
	payload := store.creates[0]
	require.False(t, payload.IsMultipart())
	body, err := payload.JSON()
	require.NoError(t, err)
	var sent map[string]any
	require.NoError(t, json.Unmarshal(body, &sent))
	require.Equal(t, "SAVE10", sent["code"])
	require.Equal(t, "City Care", sent["hospital_clinic"])
	require.Equal(t, "2024-01-01", sent["start_date"])
	require.Equal(t, "2024-01-31", sent["end_date"])
	require.Equal(t, []any{"festive", "summer"}, sent["tags"])

	require.Equal(t, Notice{Level: LevelSuccess, Resource: "Coupon", Action: "create", Message: "Coupon created successfully"}, h.last())
	require.Equal(t, []string{"/coupons"}, h.navigator.routes)
	require.Equal(t, couponForm{}, form.Values())
	require.False(t, form.Touched("Code"))
}

func TestForm_EndBeforeStartBlocksSubmit(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{}
	form := NewForm(couponConfig(h, store), "")

	values := validCouponValues()
	values.Set("start_date", "2024-02-10")
	values.Set("end_date", "2024-02-01")
	require.NoError(t, form.Apply(values))

	_, err := form.Submit(context.Background())
	var verrs serrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Equal(t, "End date cannot be before start date", verrs["EndDate"])
	require.Empty(t, store.creates)
	require.Empty(t, h.notices)
	require.Empty(t, h.navigator.routes)
	require.Equal(t, "2024-02-01", form.Values().EndDate)
}

func TestForm_FieldRules(t *testing.T) {
	t.Parallel()

	form := NewForm(couponConfig(newHarness(), &formStore[couponRecord]{}), "")
	form.Edit(func(f *couponForm) {
		f.Code = "x"
		f.Tags.Add("")
	})

	errs := form.Validate()
	require.Equal(t, "Code has an invalid format", errs["Code"])
	require.Equal(t, "Hospital clinic is required", errs["HospitalClinic"])
	require.Equal(t, "Start date is required", errs["StartDate"])
	require.Equal(t, "Tags row 1 is required", errs["Tags[0]"])
}

func TestForm_Blur(t *testing.T) {
	t.Parallel()

	form := NewForm(couponConfig(newHarness(), &formStore[couponRecord]{}), "")

	require.Equal(t, "Hospital clinic is required", form.Blur("HospitalClinic"))
	require.True(t, form.Touched("HospitalClinic"))
	require.Len(t, form.Errors(), 1)

	form.Edit(func(f *couponForm) { f.HospitalClinic = "City Care" })
	require.Equal(t, "", form.Blur("HospitalClinic"))
	require.Empty(t, form.Errors())

	form.Edit(func(f *couponForm) { f.Tags = Rows[string]{"ok", ""} })
	require.Equal(t, "Tags row 2 is required", form.Blur("Tags"))
}

func TestForm_EditPrefillsOnceAndSendsFullSet(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{record: couponRecord{
		ID:             "7",
		Code:           "WELCOME",
		HospitalClinic: "City Care",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-31",
		Tags:           []string{"new"},
		Banner:         "/media/banners/7.png",
	}}
	form := NewForm(couponConfig(h, store), "7")
	require.Equal(t, ModeEdit, form.Mode())

	require.NoError(t, form.Load(context.Background()))
	require.NoError(t, form.Load(context.Background()))
	require.Equal(t, 1, store.gets)
	require.Equal(t, couponForm{
		Code:           "WELCOME",
		HospitalClinic: "City Care",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-31",
		Tags:           Rows[string]{"new"},
	}, form.Values())
	require.Equal(t, "https://api.test/media/banners/7.png", form.Preview("banner"))
	require.False(t, form.Dirty())

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, store.updates["7"], 1)
	payload := store.updates["7"][0]
	require.False(t, payload.IsMultipart())
	body, err := payload.JSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"WELCOME","hospital_clinic":"City Care","start_date":"2024-03-01","end_date":"2024-03-31","tags":["new"]}`, string(body))
	require.Equal(t, "Coupon updated successfully", h.last().Message)
}

func TestForm_DirtyTracking(t *testing.T) {
	t.Parallel()

	form := NewForm(couponConfig(newHarness(), &formStore[couponRecord]{}), "")
	require.False(t, form.Dirty())

	form.Edit(func(f *couponForm) { f.Code = "NEW1" })
	require.True(t, form.Dirty())
	patch, err := form.Changes()
	require.NoError(t, err)
	require.Len(t, patch, 1)
	require.Equal(t, "/code", patch[0].Path)
}

func TestForm_SubmitFailureKeepsValues(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{
		writeErr: &restclient.Error{Kind: restclient.KindStatus, Status: 400, Message: "Coupon code already exists"},
	}
	form := NewForm(couponConfig(h, store), "")
	require.NoError(t, form.Apply(validCouponValues()))

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, Notice{Level: LevelError, Resource: "Coupon", Action: "create", Message: "Coupon code already exists"}, h.last())
	require.Empty(t, h.navigator.routes)
	require.Equal(t, "SAVE10", form.Values().Code)
	require.Equal(t, "City Care", form.Values().HospitalClinic)
}

func TestForm_LoadFailureNotifies(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{getErr: &restclient.Error{Kind: restclient.KindTransport, Message: restclient.FallbackMessage}}
	form := NewForm(couponConfig(h, store), "3")

	require.Error(t, form.Load(context.Background()))
	require.Equal(t, restclient.FallbackMessage, h.last().Message)
	require.Equal(t, "load", h.last().Action)
}

func TestForm_InvalidFileBlocksSubmit(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{}
	form := NewForm(couponConfig(h, store), "")
	require.NoError(t, form.Apply(validCouponValues()))

	require.NoError(t, form.Attach("banner", upload.FromBytes("terms.pdf", []byte("%PDF-1.4\n"))))
	require.Contains(t, form.Errors()["banner"], "Banner must be of type")

	_, err := form.Submit(context.Background())
	var verrs serrors.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Contains(t, verrs, "banner")
	require.Empty(t, store.creates)

	big := upload.FromBytes("big.png", pngBytes)
	big.Size = 2 * upload.KiB
	require.NoError(t, form.Attach("banner", big))
	require.Equal(t, "Banner must not exceed 1 KiB", form.Errors()["banner"])

	require.Error(t, form.Attach("unknown"))
}

func TestForm_FileGoesMultipartAndUnchangedFileIsOmitted(t *testing.T) {
	t.Parallel()

	h := newHarness()
	store := &formStore[couponRecord]{record: couponRecord{ID: "7", Code: "WELCOME", HospitalClinic: "City Care", StartDate: "2024-03-01", EndDate: "2024-03-31", Banner: "/media/7.png"}}

	form := NewForm(couponConfig(h, store), "7")
	require.NoError(t, form.Load(context.Background()))
	require.NoError(t, form.Attach("banner", upload.FromBytes("new.png", pngBytes)))
	require.True(t, form.Dirty())

	payload := form.Payload()
	require.True(t, payload.IsMultipart())
	require.Len(t, payload.Files(), 1)
	require.Equal(t, "banner", payload.Files()[0].Field)
	fields, err := payload.Fields()
	require.NoError(t, err)
	require.Equal(t, "City Care", fields.Get("hospital_clinic"))

	form.Detach("banner")
	payload = form.Payload()
	require.False(t, payload.IsMultipart())
	body, err := payload.JSON()
	require.NoError(t, err)
	require.NotContains(t, string(body), "banner")
}

func TestRows(t *testing.T) {
	t.Parallel()

	var r Rows[string]
	require.Equal(t, 0, r.Add("a"))
	r.Add("b")
	r.Add("c")
	require.True(t, r.Remove(0))
	require.Equal(t, Rows[string]{"b", "c"}, r)
	require.True(t, r.Set(1, "z"))
	require.Equal(t, Rows[string]{"b", "z"}, r)
	require.False(t, r.Remove(5))
	require.False(t, r.Set(-1, "x"))
	require.Equal(t, 2, r.Len())

	r.Clear()
	b, err := json.Marshal(struct {
		Tags Rows[string] `json:"tags"`
	}{Tags: r})
	require.NoError(t, err)
	require.JSONEq(t, `{"tags":[]}`, string(b))
}

func TestForm_RemoveAndClearRows(t *testing.T) {
	t.Parallel()

	form := NewForm(couponConfig(newHarness(), &formStore[couponRecord]{}), "")
	form.Edit(func(f *couponForm) { f.Tags = Rows[string]{"a", "b", "c"} })

	require.NoError(t, form.RemoveRow("tags", 1))
	require.Equal(t, Rows[string]{"a", "c"}, form.Values().Tags)
	require.True(t, form.Touched("Tags"))

	require.ErrorIs(t, form.RemoveRow("tags", 2), ErrNoRow)
	require.ErrorIs(t, form.RemoveRow("code", 0), ErrNoRow)
	require.ErrorIs(t, form.ClearRows("nickname"), ErrNoRow)

	require.NoError(t, form.ClearRows("tags"))
	require.Zero(t, form.Values().Tags.Len())
}
