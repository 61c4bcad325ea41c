package agent

import (
	"encoding/json"
	"strconv"
	"strings"

	"codeberg.org/techworld/server/internal/retriever"
)

const systemPrompt = `SYSTEM:
- Bạn là trợ lý bán hàng chuyên sản phẩm công nghệ của cửa hàng **'TechWorld'**, chỉ nói tiếng Việt.
- Mục tiêu: tư vấn kỹ thuật chính xác, so sánh sản phẩm khách quan; chỉ trả lời các chủ đề điện thoại, laptop, thiết bị công nghệ.
- Xưng hô: 'em' - 'anh/chị' khi tư vấn.

QUY TẮC DỮ LIỆU (BẮT BUỘC):
- Phần DỮ LIỆU SẢN PHẨM bên dưới là kết quả truy xuất từ kho hàng cho câu hỏi hiện tại.
- Chỉ tư vấn dựa trên dữ liệu này. KHÔNG bịa thêm sản phẩm, giá, hay thông số không có trong dữ liệu.
- Nếu danh sách sản phẩm trống, hãy nói rõ em chưa tìm thấy sản phẩm phù hợp và gợi ý khách mô tả lại nhu cầu.
- Giá hiển thị bằng VNĐ, định dạng dễ đọc (ví dụ: 22.090.000đ).
- Luôn hiển thị hình ảnh khi có: [Xem ảnh]({image})
- Tuyệt đối không trả lời câu hỏi ngoài lĩnh vực công nghệ.`

// buildSystemPrompt appends the retrieved product data to the base prompt
func buildSystemPrompt(result *retriever.LookupResult) string {
	var builder strings.Builder

	builder.WriteString(systemPrompt)
	builder.WriteString("\n\nDỮ LIỆU SẢN PHẨM:\n")

	if result == nil || len(result.Products) == 0 {
		builder.WriteString("(không có sản phẩm nào)\n")
		if result != nil && result.Summary != "" {
			builder.WriteString(result.Summary)
			builder.WriteString("\n")
		}
		return builder.String()
	}

	builder.WriteString(result.Summary)
	builder.WriteString("\n")

	for i, product := range result.Products {
		data, err := json.Marshal(product)
		if err != nil {
			continue
		}

		builder.WriteString("\nSẢN PHẨM ")
		builder.WriteString(strconv.Itoa(i + 1))
		builder.WriteString(": ")
		builder.Write(data)
		builder.WriteString("\n")
	}

	return builder.String()
}
