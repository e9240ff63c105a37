package catalog

// Wire shapes of the remote pet-shop API. Prices are integer minor units.

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Des       string `json:"des"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

type Service struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Des       string `json:"des"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"createdAt"`
}

type Pet struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	Age       int    `json:"age"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
}

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Gender    string `json:"gender"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

type CartItemRequest struct {
	Type     string `json:"type"` // "product" | "service"
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Pet      string `json:"pet,omitempty"`
}

type CartRequest struct {
	CustomerID  string            `json:"customerId"`
	Items       []CartItemRequest `json:"items"`
	TotalAmount int64             `json:"totalAmount"`
}

type Cart struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customerId"`
	Items       []CartItemRequest `json:"items"`
	TotalAmount int64             `json:"totalAmount"`
	CreatedAt   string            `json:"createdAt"`
}

type OrderRequest struct {
	CustomerID string `json:"customerId"`
	CartID     string `json:"cartId"`
	Status     string `json:"status"`
}

type Order struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	CartID     string `json:"cartId"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"` // "HH:mm dd/MM/yyyy"
}

type SmartOrderRequest struct {
	Text       string `json:"text"`
	CustomerID string `json:"customerId,omitempty"`
}

type SmartOrderCartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl,omitempty"`
	Type     string `json:"type"` // lower-case wire tag
	Quantity int    `json:"quantity"`
}

type SmartOrderResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	CartItems   []SmartOrderCartItem `json:"cartItems"`
	TotalAmount int64                `json:"totalAmount"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterVerifyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Code     string `json:"code"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type InventoryTransaction struct {
	ID               string `json:"id"`
	ItemType         string `json:"itemType"`
	ItemID           string `json:"itemId"`
	ItemName         string `json:"itemName"`
	Type             string `json:"type"` // import | export | sale | adjustment
	Quantity         int    `json:"quantity"`
	PreviousQuantity int    `json:"previousQuantity"`
	NewQuantity      int    `json:"newQuantity"`
	Reason           string `json:"reason,omitempty"`
	Note             string `json:"note,omitempty"`
	OrderID          string `json:"orderId,omitempty"`
	PerformedBy      string `json:"performedBy,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

type InventoryTransactionRequest struct {
	ItemType    string `json:"itemType"`
	ItemID      string `json:"itemId"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Reason      string `json:"reason,omitempty"`
	Note        string `json:"note,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	PerformedBy string `json:"performedBy,omitempty"`
}

type AdjustInventoryRequest struct {
	ItemType    string `json:"itemType"`
	ItemID      string `json:"itemId"`
	NewQuantity int    `json:"newQuantity"`
	Reason      string `json:"reason,omitempty"`
	Note        string `json:"note,omitempty"`
}

type InventoryAlert struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	CurrentQuantity int    `json:"currentQuantity"`
	MinThreshold    int    `json:"minThreshold"`
	ItemType        string `json:"itemType"`
}

type InventoryStats struct {
	TotalImports     int `json:"totalImports"`
	TotalExports     int `json:"totalExports"`
	TotalSales       int `json:"totalSales"`
	TotalAdjustments int `json:"totalAdjustments"`
	ImportQuantity   int `json:"importQuantity"`
	ExportQuantity   int `json:"exportQuantity"`
	SalesQuantity    int `json:"salesQuantity"`
}
