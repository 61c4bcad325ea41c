package retriever

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/techworld/server/internal/llm"
)

// prompt for the small SQL model. Vietnamese because the storefront and
// its users are Vietnamese; the model translates their phrasing directly
// into statements over the products table.
const sqlGenPrompt = `Bạn là một trợ lý tạo truy vấn SQL cho bảng ` + "`products`" + `. Nhiệm vụ của bạn là chuyển đổi các truy vấn người dùng bằng tiếng Việt thành các câu lệnh SQL.

CẤU TRÚC BẢNG PRODUCTS:
- name: text (ví dụ: 'iPhone 12', 'iPad Air (M3) 11 inch Wi-Fi', 'MacBook Pro M4 Pro 16 inch 2025', ...)
- product_id: text (id sản phẩm)
- type: text (chỉ có 3 loại MacBook, iPhone, iPad)
- color: text (màu sắc sản phẩm)
- image: text (URL hình ảnh sản phẩm)
- price: float (VND)
- stock: text (instock, onbackorder)
- ram: int (4, 8, 16, 32)
- storage: int (128, 512, 1024, ...)
- description: text (mô tả sản phẩm)
- evaluate: text (đánh giá sản phẩm)

VÍ DỤ:
1. "thông tin của MacBook RAM 16GB" →
   SELECT product_id, name, price, image, storage, color FROM products WHERE type ILIKE '%macbook%' AND ram = 16;

2. "iPhone giá dưới 15 triệu" →
   SELECT product_id, name, price, image, storage, color FROM products WHERE type ILIKE '%iphone%' AND price < 15000000;

3. "Sản phẩm màu đen còn hàng" →
   SELECT product_id, name, price, image, storage, color FROM products WHERE color ILIKE '%đen%' AND stock ILIKE '%instock%';

YÊU CẦU:
- Chỉ tạo truy vấn SQL. KHÔNG bao gồm giải thích hoặc chú thích.
- Luôn sử dụng toán tử ` + "`ILIKE`" + ` để lọc các trường văn bản (như name, type, color, stock, v.v.) để đảm bảo việc so khớp không phân biệt chữ hoa/thường.
- KHÔNG BAO GIỜ chọn các trường ` + "`description`" + ` hoặc ` + "`evaluate`" + ` trừ khi người dùng yêu cầu rõ ràng mô tả hoặc đánh giá sản phẩm.
- Luôn chọn các trường sau trong mệnh đề SELECT (trừ khi người dùng chỉ định khác): ` + "`product_id`, `name`, `price`, `image`, `storage`, và `color`" + `.
- Chỉ tạo truy vấn SQL hợp lệ tương ứng trực tiếp với yêu cầu người dùng sau:
"{query}"`

const queryPlaceholder = "{query}"

// renderSQLPrompt substitutes the user query into the template. Plain
// string replacement, not Sprintf: the few-shot ILIKE patterns carry
// literal % characters.
func renderSQLPrompt(userQuery string) string {
	return strings.ReplaceAll(sqlGenPrompt, queryPlaceholder, userQuery)
}

// generateSQLPlan asks the small SQL model for statements answering the query
func (c *Client) generateSQLPlan(ctx context.Context, userQuery string) (string, error) {
	resp, err := c.sqlgen.GenerateText(ctx, llm.TextGenerationRequest{
		Messages: []llm.Message{
			{Role: "user", Content: renderSQLPrompt(userQuery)},
		},
	})

	if err != nil {
		return "", fmt.Errorf("failed to generate SQL plan: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}

// splitStatements splits raw model output on ";" and drops empty fragments
func splitStatements(raw string) []string {
	var statements []string

	for _, part := range strings.Split(raw, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			statements = append(statements, stmt)
		}
	}

	return statements
}
