package models

import "github.com/karimjl/DCB-AppointmentService/internal/service/appointments/models"

// DashboardStatsResponse is the payload behind GET /stats/dashboard: today's
// appointments plus grouped counts for the summary cards
type DashboardStatsResponse struct {
	TodayAppointmentsCount int                          `json:"todayAppointmentsCount"`
	TodayAppointments      []models.AppointmentResponse `json:"todayAppointments"`
	CountsByStatus         map[string]int               `json:"countsByStatus"`
	CountsByType           map[string]int               `json:"countsByType"`
}
