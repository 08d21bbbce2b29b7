package models

import "time"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Banner struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url"`
}

// Post content arrives from the backend as rich HTML authored in the admin
// console; the gateway sanitizes it before serving.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardSummary struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalProducts int64   `json:"total_products"`
	TotalPosts    int64   `json:"total_posts"`
	TotalUsers    int64   `json:"total_users"`
	Revenue       float64 `json:"revenue"`
}
