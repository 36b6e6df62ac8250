package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xdSharp/Dashly-sub000/internal/models"
)

// MockStore is a mock implementation of the Store interface
type MockStore struct {
	mock.Mock
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) FindCategoryByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Category, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockStore) CreateCategory(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockStore) FindProductByName(ctx context.Context, ownerID uuid.UUID, name string) (*models.Product, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockStore) CreateProduct(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func csvText(dataLines ...string) string {
	text := validHeader + "\n"
	for _, l := range dataLines {
		text += l + "\n"
	}
	return text
}

func TestImportCSV_AllRowsSucceed(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(nil, nil)
	store.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil)
	store.On("FindProductByName", mock.Anything, owner, mock.AnythingOfType("string")).Return(nil, nil)
	store.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)
	store.On("CreateSale", mock.Anything, mock.AnythingOfType("*models.Sale")).Return(nil)

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
		"Bread,Groceries,25,1,25,2023-04-02",
	))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.Processed)
	assert.Empty(t, result.Errors)
	store.AssertNumberOfCalls(t, "CreateSale", 2)
}

func TestImportCSV_ExistingEntitiesNotDuplicated(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()
	category := &models.Category{ID: uuid.New(), OwnerID: owner, Name: "Groceries"}
	product := &models.Product{ID: uuid.New(), OwnerID: owner, Name: "Milk", CategoryID: category.ID}

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(category, nil)
	store.On("FindProductByName", mock.Anything, owner, "Milk").Return(product, nil)
	store.On("CreateSale", mock.Anything, mock.MatchedBy(func(s *models.Sale) bool {
		return s.ProductID == product.ID && s.OwnerID == owner
	})).Return(nil)

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
	))

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	store.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestImportCSV_RowFailureIsIsolated(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()
	category := &models.Category{ID: uuid.New(), OwnerID: owner, Name: "Groceries"}

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(category, nil)
	store.On("FindProductByName", mock.Anything, owner, mock.AnythingOfType("string")).Return(nil, nil)
	store.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)
	store.On("CreateSale", mock.Anything, mock.MatchedBy(func(s *models.Sale) bool {
		return s.Price == "30"
	})).Return(errors.New("duplicate key"))
	store.On("CreateSale", mock.Anything, mock.AnythingOfType("*models.Sale")).Return(nil)

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
		"Eggs,Groceries,30,1,30,2023-04-02",
		"Bread,Groceries,25,1,25,2023-04-03",
	))

	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, []RowError{{Row: 2, Error: "duplicate key"}}, result.Errors)
	// The third row is still created after the second one failed.
	store.AssertNumberOfCalls(t, "CreateSale", 3)
}

func TestImportCSV_ProcessedPlusErrorsEqualsTotal(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()

	store.On("FindCategoryByName", mock.Anything, owner, mock.AnythingOfType("string")).Return(nil, errors.New("connection reset"))

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
		"Bread,Bakery,25,1,25,2023-04-02",
	))

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 0, result.Processed)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, result.TotalRows, result.Processed+len(result.Errors))
	assert.Equal(t, 1, result.Errors[0].Row)
	assert.Equal(t, 2, result.Errors[1].Row)
}

func TestImportCSV_BatchFatalBeforeAnyRow(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner,
		"product_name,category_name,quantity,total_amount,date\nMilk,Groceries,2,100,2023-04-01\n")

	assert.Nil(t, result)
	assert.EqualError(t, err, "Missing required column: price")
	store.AssertNotCalled(t, "FindCategoryByName", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "CreateSale", mock.Anything, mock.Anything)
}

func TestImportCSV_EmptyErrorMessageRecordedAsUnknown(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(nil, errors.New(""))

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
	))

	assert.NoError(t, err)
	assert.Equal(t, []RowError{{Row: 1, Error: "Unknown error"}}, result.Errors)
}

func TestImportCSV_InvalidDateIsRowLevel(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()
	category := &models.Category{ID: uuid.New(), OwnerID: owner, Name: "Groceries"}
	product := &models.Product{ID: uuid.New(), OwnerID: owner, Name: "Milk", CategoryID: category.ID}

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(category, nil)
	store.On("FindProductByName", mock.Anything, owner, "Milk").Return(product, nil)
	store.On("CreateSale", mock.Anything, mock.AnythingOfType("*models.Sale")).Return(nil)

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,not-a-date",
		"Milk,Groceries,50,2,100,2023-04-01",
	))

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
}

func TestImportCSV_SaleFieldsPreserveDecimalStrings(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()
	category := &models.Category{ID: uuid.New(), OwnerID: owner, Name: "Groceries"}
	product := &models.Product{ID: uuid.New(), OwnerID: owner, Name: "Milk", CategoryID: category.ID}

	var captured *models.Sale
	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(category, nil)
	store.On("FindProductByName", mock.Anything, owner, "Milk").Return(product, nil)
	store.On("CreateSale", mock.Anything, mock.AnythingOfType("*models.Sale")).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*models.Sale)
	}).Return(nil)

	svc := NewService(store, nil)
	text := validHeader + ",employee,customer_name,customer_email,payment_method,status\n" +
		`Milk,Groceries,49.99,3,149.97,2023-04-01,Jane,Bob,bob@example.com,card,completed` + "\n"
	result, err := svc.ImportCSV(context.Background(), owner, text)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	assert.Equal(t, "49.99", captured.Price)
	assert.Equal(t, "149.97", captured.TotalAmount)
	assert.Equal(t, 3, captured.Quantity)
	assert.Equal(t, "2023-04-01", captured.SaleDate.Format("2006-01-02"))
	assert.Equal(t, "Jane", *captured.Employee)
	assert.Equal(t, "bob@example.com", *captured.CustomerEmail)
	assert.Equal(t, "card", *captured.PaymentMethod)
}

func TestImportCSV_CountersStayZero(t *testing.T) {
	store := new(MockStore)
	owner := uuid.New()

	store.On("FindCategoryByName", mock.Anything, owner, "Groceries").Return(nil, nil)
	store.On("CreateCategory", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil)
	store.On("FindProductByName", mock.Anything, owner, "Milk").Return(nil, nil)
	store.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)
	store.On("CreateSale", mock.Anything, mock.AnythingOfType("*models.Sale")).Return(nil)

	svc := NewService(store, nil)
	result, err := svc.ImportCSV(context.Background(), owner, csvText(
		"Milk,Groceries,50,2,100,2023-04-01",
	))

	assert.NoError(t, err)
	// Counters are reported but not maintained by the row loop.
	assert.Equal(t, 0, result.Categories)
	assert.Equal(t, 0, result.Products)
	assert.Equal(t, 0, result.Sales)
}
