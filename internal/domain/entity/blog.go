// Package entity 定义领域实体
package entity

// BlogPost 博客文章，静态内容
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
}

// StaticPage 隐私政策、服务条款等静态页面
type StaticPage struct {
	Title       string `json:"title"`
	LastUpdated string `json:"last_updated"`
	Body        string `json:"body"`
}
