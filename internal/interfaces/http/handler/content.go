package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/content"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/application/navigation"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/dto"
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/interfaces/http/middleware"
)

// ContentHandler 博客与静态页面处理器
type ContentHandler struct {
	catalog *content.Catalog
}

func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// ListPosts 博客列表，不含正文
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts := h.catalog.ListPosts()
	out := make([]dto.BlogPostSummaryDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.ToBlogPostSummaryDTO(p))
	}
	dto.Success(c, out)
}

// GetPost 文章详情，读取成功后把会话导航到该文详情页
func (h *ContentHandler) GetPost(c *gin.Context) {
	post, err := h.catalog.GetPost(c.Param("id"))
	if err != nil {
		dto.Fail(c, err)
		return
	}

	if sess := middleware.SessionFromContext(c); sess != nil {
		navigation.SelectPost(sess, post.ID)
	}
	dto.Success(c, dto.ToBlogPostDTO(post))
}

// Privacy 隐私政策页
func (h *ContentHandler) Privacy(c *gin.Context) {
	dto.Success(c, dto.ToStaticPageDTO(h.catalog.PrivacyPolicy()))
}

// Terms 服务条款页
func (h *ContentHandler) Terms(c *gin.Context) {
	dto.Success(c, dto.ToStaticPageDTO(h.catalog.TermsOfService()))
}
