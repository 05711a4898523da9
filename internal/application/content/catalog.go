// Package content 提供博客文章与静态页面的只读目录
package content

import (
	"github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"
	apperrors "github.com/Baaabaei/Automatic-Prompt-Engineer/pkg/errors"
)

// Catalog 内置内容目录，数据随二进制发布
type Catalog struct{}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// ListPosts 按发布时间倒序返回全部文章
func (c *Catalog) ListPosts() []entity.BlogPost {
	out := make([]entity.BlogPost, len(blogPosts))
	copy(out, blogPosts)
	return out
}

// GetPost 按 ID 查找文章
func (c *Catalog) GetPost(id string) (*entity.BlogPost, error) {
	for i := range blogPosts {
		if blogPosts[i].ID == id {
			p := blogPosts[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrPostNotFound.WithDetail(id)
}

// PrivacyPolicy 返回隐私政策页
func (c *Catalog) PrivacyPolicy() entity.StaticPage {
	return privacyPolicy
}

// TermsOfService 返回服务条款页
func (c *Catalog) TermsOfService() entity.StaticPage {
	return termsOfService
}
