package dto

import "github.com/Baaabaei/Automatic-Prompt-Engineer/internal/domain/entity"

// BlogPostSummaryDTO 博客列表条目，不含正文
type BlogPostSummaryDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
}

// BlogPostDTO 博客文章详情
type BlogPostDTO struct {
	BlogPostSummaryDTO
	Content string `json:"content"`
}

// StaticPageDTO 静态页面
type StaticPageDTO struct {
	Title       string `json:"title"`
	LastUpdated string `json:"last_updated"`
	Body        string `json:"body"`
}

// ToBlogPostSummaryDTO 列表条目转换
func ToBlogPostSummaryDTO(p entity.BlogPost) BlogPostSummaryDTO {
	return BlogPostSummaryDTO{
		ID:       p.ID,
		Title:    p.Title,
		Author:   p.Author,
		Date:     p.Date,
		Category: p.Category,
		Excerpt:  p.Excerpt,
	}
}

// ToBlogPostDTO 详情转换
func ToBlogPostDTO(p *entity.BlogPost) BlogPostDTO {
	return BlogPostDTO{
		BlogPostSummaryDTO: ToBlogPostSummaryDTO(*p),
		Content:            p.Content,
	}
}

// ToStaticPageDTO 静态页转换
func ToStaticPageDTO(p entity.StaticPage) StaticPageDTO {
	return StaticPageDTO{
		Title:       p.Title,
		LastUpdated: p.LastUpdated,
		Body:        p.Body,
	}
}
