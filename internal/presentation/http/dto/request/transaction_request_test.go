package request

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{
  "receipt_no": " R-0001 ",
  "registered_at": "2024-05-01 10:15:00",
  "cashier_name": "Sato",
  "items": [
    {"product_code": "4901234567890", "product_category": "food", "product_name": "Rice", "pos_cost": 80, "price_excl": 100, "qty": 2, "tax_rate": 8},
    {"product_code": "12", "product_name": "Soap", "price_excl": 300, "qty": 1.0, "tax_rate": 10}
  ]
}`

func decodeAndValidate(t *testing.T, body string) (*RegisterTransaction, []string) {
	t.Helper()
	req, err := DecodeRegisterTransaction(strings.NewReader(body))
	require.NoError(t, err)

	out, errs := req.Validate()
	var msgs []string
	for _, fe := range errs {
		msgs = append(msgs, fe.String())
	}
	return out, msgs
}

func TestValidateAcceptsWellFormedBody(t *testing.T) {
	out, errs := decodeAndValidate(t, validBody)
	require.Empty(t, errs)
	require.NotNil(t, out)

	assert.Equal(t, "R-0001", out.ReceiptNo)
	assert.Equal(t, "2024-05-01 10:15:00", out.RegisteredAt)
	assert.Equal(t, "Sato", out.CashierName)
	require.Len(t, out.Items, 2)

	first := out.Items[0]
	require.NotNil(t, first.ProductCategory)
	assert.Equal(t, "food", *first.ProductCategory)
	require.NotNil(t, first.PosCost)
	assert.EqualValues(t, 80, *first.PosCost)
	assert.EqualValues(t, 2, first.Qty)

	second := out.Items[1]
	assert.Nil(t, second.ProductCategory)
	assert.Nil(t, second.PosCost)
	assert.EqualValues(t, 1, second.Qty)
	assert.EqualValues(t, 10, second.TaxRate)
}

func TestValidateAcceptsLocalAlias(t *testing.T) {
	body := strings.Replace(validBody, `"registered_at"`, `"registered_at_jst"`, 1)
	out, errs := decodeAndValidate(t, body)
	require.Empty(t, errs)
	assert.Equal(t, "2024-05-01 10:15:00", out.RegisteredAt)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		want string
	}{
		{"blank receipt", `" R-0001 "`, `"   "`, "receipt_no is required"},
		{"missing cashier", `"cashier_name": "Sato",`, ``, "cashier_name is required"},
		{"bad timestamp", `"2024-05-01 10:15:00"`, `"2024-05-01T10:15:00"`, "registered_at must be 'YYYY-MM-DD HH:MM:SS'"},
		{"zero qty", `"qty": 2`, `"qty": 0`, "items[0].qty must be >= 1"},
		{"negative price", `"price_excl": 100`, `"price_excl": -1`, "items[0].price_excl must be >= 0"},
		{"unsupported rate", `"tax_rate": 8}`, `"tax_rate": 7}`, "items[0].tax_rate must be 8 or 10"},
		{"fractional qty", `"qty": 2`, `"qty": 1.5`, "items[0].qty must be an integer"},
		{"string qty", `"qty": 2`, `"qty": "2"`, "items[0].qty must be an integer"},
		{"bad product code", `"4901234567890"`, `"49-01"`, "items[0].product_code must be 1-13 digits"},
		{"long product code", `"4901234567890"`, `"49012345678901"`, "items[0].product_code must be 1-13 digits"},
		{"bad pos cost", `"pos_cost": 80`, `"pos_cost": "x"`, "items[0].pos_cost must be an integer"},
		{"huge price", `"price_excl": 100`, `"price_excl": 4611686018427387904`, "items[0].price_excl is too large"},
		{"huge qty", `"qty": 2`, `"qty": 1000001`, "items[0].qty is too large"},
		{"huge pos cost", `"pos_cost": 80`, `"pos_cost": 1e18`, "items[0].pos_cost is too large"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := strings.Replace(validBody, tc.old, tc.new, 1)
			require.NotEqual(t, validBody, body)

			out, errs := decodeAndValidate(t, body)
			assert.Nil(t, out)
			assert.Contains(t, errs, tc.want)
		})
	}
}

func TestValidateRejectsEmptyItems(t *testing.T) {
	for _, items := range []string{`[]`, `null`, `"x"`, `{}`} {
		body := `{"receipt_no":"1","registered_at":"2024-05-01 10:15:00","cashier_name":"A","items":` + items + `}`
		out, errs := decodeAndValidate(t, body)
		assert.Nil(t, out, items)
		assert.Equal(t, []string{"items must be a non-empty array"}, errs, items)
	}
}

func TestValidateRejectsNonObjectItem(t *testing.T) {
	body := `{"receipt_no":"1","registered_at":"2024-05-01 10:15:00","cashier_name":"A","items":[1]}`
	_, errs := decodeAndValidate(t, body)
	assert.Equal(t, []string{"items[0] must be an object"}, errs)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	for _, body := range []string{`{`, `[1,2]`, ``} {
		_, err := DecodeRegisterTransaction(strings.NewReader(body))
		require.Error(t, err, body)
		assert.Equal(t, "Invalid JSON", err.Error())
	}
}

func TestReceiptLookupNormalize(t *testing.T) {
	q := ReceiptLookup{Date: " 2024-05-01 ", ReceiptNo: " A/1 "}
	require.NoError(t, q.Normalize())
	assert.Equal(t, "2024-05-01", q.Date)
	assert.Equal(t, "A/1", q.ReceiptNo)

	q = ReceiptLookup{Date: "20240501", ReceiptNo: "1"}
	assert.NoError(t, q.Normalize())

	q = ReceiptLookup{Date: "2024-05-01"}
	assert.EqualError(t, q.Normalize(), "date and receipt_no are required")

	q = ReceiptLookup{Date: "05/01/2024", ReceiptNo: "1"}
	assert.EqualError(t, q.Normalize(), "date must be YYYY-MM-DD")
}

func TestProductLookupNormalize(t *testing.T) {
	q := ProductLookup{Code: " 4901234567890 "}
	require.NoError(t, q.Normalize())
	assert.Equal(t, "4901234567890", q.Code)

	assert.EqualError(t, (&ProductLookup{}).Normalize(), "code is required")
	assert.EqualError(t, (&ProductLookup{Code: "abc"}).Normalize(), "code must be 1-13 digits")
}

func TestNewValidatorRegistersCustomTags(t *testing.T) {
	assert.NotPanics(t, func() { newValidator() })

	// a rejected registration must stop startup
	assert.Panics(t, func() {
		must(validator.New().RegisterValidation("", func(validator.FieldLevel) bool { return true }))
	})
}
