package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddress_Empty(t *testing.T) {
	assert.Equal(t, "", Address(""))
	assert.Equal(t, "", Address("   "))
}

func TestAddress_Lowercases(t *testing.T) {
	assert.Equal(t, "123 main st", Address("123 MAIN STREET"))
}

func TestAddress_AbbreviatesStreetTypes(t *testing.T) {
	assert.Equal(t, "123 main st", Address("123 Main Street"))
	assert.Equal(t, "456 oak ave", Address("456 Oak Avenue"))
	assert.Equal(t, "789 sunset blvd", Address("789 Sunset Boulevard"))
	assert.Equal(t, "12 elm rd", Address("12 Elm Road"))
	assert.Equal(t, "7 cherry ln", Address("7 Cherry Lane"))
	assert.Equal(t, "9 hill dr", Address("9 Hill Drive"))
	assert.Equal(t, "3 park ct", Address("3 Park Court"))
	assert.Equal(t, "1 market pl", Address("1 Market Place"))
	assert.Equal(t, "apt 2b", Address("Apartment 2B"))
}

func TestAddress_AlreadyAbbreviated(t *testing.T) {
	assert.Equal(t, "123 main st", Address("123 Main St"))
}

func TestAddress_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "123 main st", Address("  123   Main \t Street  "))
}

func TestAddress_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "123 main st suite 4", Address("123 Main St., Suite #4"))
}

func TestAddress_KeepsZipPlusFourHyphen(t *testing.T) {
	assert.Equal(t, "500 pine ct springfield il 62704-1234",
		Address("500 Pine Court, Springfield, IL 62704-1234"))
}

func TestAddress_FoldsDiacritics(t *testing.T) {
	assert.Equal(t, "12 cafe st", Address("12 Café Street"))
}

func TestPhone_StripsFormatting(t *testing.T) {
	assert.Equal(t, "5551234567", Phone("(555) 123-4567"))
	assert.Equal(t, "15551234567", Phone("+1 555 123 4567"))
}

func TestPhone_DropsNonDigits(t *testing.T) {
	assert.Equal(t, "", Phone("call us"))
	assert.Equal(t, "", Phone(""))
}

func TestEmail_LowercasesAndTrims(t *testing.T) {
	assert.Equal(t, "sales@example.com", Email("  Sales@Example.COM "))
	assert.Equal(t, "", Email(""))
}

func TestCompany_Canonicalizes(t *testing.T) {
	assert.Equal(t, "acme corp", Company("  Acme Corp "))
	assert.Equal(t, "cafe lumiere", Company("Café Lumière"))
}
