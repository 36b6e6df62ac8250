package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const validHeader = "product_name,category_name,price,quantity,total_amount,date"

func TestValidate_WellFormed(t *testing.T) {
	text := validHeader + ",employee\n" +
		`"Milk","Groceries",50,2,100,"2023-04-01","John"` + "\n" +
		`Bread,Groceries,25,1,25,2023-04-02,` + "\n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Line)
	assert.Equal(t, "Milk", rows[0].Values["product_name"])
	assert.Equal(t, "Groceries", rows[0].Values["category_name"])
	assert.Equal(t, "John", rows[0].Values["employee"])
	assert.Equal(t, 50.0, rows[0].Numbers["price"])
	assert.Equal(t, 2.0, rows[0].Numbers["quantity"])
	assert.Equal(t, 100.0, rows[0].Numbers["total_amount"])

	assert.Equal(t, 2, rows[1].Line)
	assert.Equal(t, "", rows[1].Values["employee"])
}

func TestValidate_QuotedCommaField(t *testing.T) {
	text := validHeader + "\n" +
		`"Acme, Inc.","Groceries",10,1,10,"2023-01-01"` + "\n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Acme, Inc.", rows[0].Values["product_name"])
}

func TestValidate_MissingColumnNamesFirstMissing(t *testing.T) {
	// Header lacks price and date; price comes first in required order.
	text := "product_name,category_name,quantity,total_amount\nMilk,Groceries,2,100\n"

	rows, err := Validate(text)
	assert.Nil(t, rows)
	assert.EqualError(t, err, "Missing required column: price")
}

func TestValidate_FieldCountMismatch(t *testing.T) {
	text := validHeader + "\n" +
		"Milk,Groceries,50,2,100,2023-04-01\n" +
		"Bread,Groceries,25,1,25\n"

	rows, err := Validate(text)
	assert.Nil(t, rows)
	assert.EqualError(t, err, "Line 2 has 5 values but expected 6")
}

func TestValidate_InvalidNumberIsBatchFatal(t *testing.T) {
	text := validHeader + "\n" +
		"Milk,Groceries,50,2,100,2023-04-01\n" +
		"Eggs,Groceries,abc,1,10,2023-04-02\n"

	rows, err := Validate(text)
	assert.Nil(t, rows)
	assert.EqualError(t, err, "Invalid number for price in line 2: abc")
}

func TestValidate_EmptyLinesSkipped(t *testing.T) {
	text := validHeader + "\n\nMilk,Groceries,50,2,100,2023-04-01\n\n\n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Line)
}

func TestValidate_HeaderOrderIndependent(t *testing.T) {
	text := "date,total_amount,quantity,price,category_name,product_name\n" +
		"2023-04-01,100,2,50,Groceries,Milk\n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Equal(t, "Milk", rows[0].Values["product_name"])
	assert.Equal(t, 50.0, rows[0].Numbers["price"])
}

func TestValidate_ValuesTrimmed(t *testing.T) {
	text := validHeader + "\n" +
		"  Milk  , Groceries , 50 ,2,100, 2023-04-01 \n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Equal(t, "Milk", rows[0].Values["product_name"])
	assert.Equal(t, "Groceries", rows[0].Values["category_name"])
	assert.Equal(t, 50.0, rows[0].Numbers["price"])
	assert.Equal(t, "2023-04-01", rows[0].Values["date"])
}

func TestValidate_EmptyFile(t *testing.T) {
	_, err := Validate("")
	assert.Error(t, err)
}

func TestValidate_CRLF(t *testing.T) {
	text := validHeader + "\r\nMilk,Groceries,50,2,100,2023-04-01\r\n"

	rows, err := Validate(text)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
