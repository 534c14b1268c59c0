package main

import "github.com/ongvang00/HealthManagementSystem/cmd/health"

func main() {
	health.Execute()
}
