package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/becom/pointage-backend-go/internal/config"
	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/pkg/database"
	"github.com/becom/pointage-backend-go/internal/repository/postgresql"
	employeeService "github.com/becom/pointage-backend-go/internal/service/employee"
)

// Provisioning CLI for operators. Creates employee accounts and prints the
// generated login, or seeds the initial admin account.
func main() {
	firstName := flag.String("first", "", "employee first name")
	lastName := flag.String("last", "", "employee last name")
	password := flag.String("password", "", "account password (min 8 characters)")
	role := flag.String("role", "employee", "account role: employee or admin")
	seedAdmin := flag.Bool("seed-admin", false, "create the default admin account if none exists")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to database:", err)
		os.Exit(1)
	}

	employeeSvc := employeeService.NewEmployeeService(db, postgresql.NewEmployeeRepository(db))
	ctx := context.Background()

	if *seedAdmin {
		if *password == "" {
			fmt.Fprintln(os.Stderr, "-password is required with -seed-admin")
			os.Exit(1)
		}
		login, created, err := employeeSvc.SeedAdmin(ctx, *password)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to seed admin account:", err)
			os.Exit(1)
		}
		if !created {
			fmt.Println("An admin account already exists, nothing to do")
			return
		}
		fmt.Println("Admin account created, login:", login)
		return
	}

	if *firstName == "" || *lastName == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "-first, -last and -password are required")
		flag.Usage()
		os.Exit(1)
	}

	resp, err := employeeSvc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Password:  *password,
		Role:      *role,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create employee:", err)
		os.Exit(1)
	}

	fmt.Println("Employee created, login:", resp.ID)
}
