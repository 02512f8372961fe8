// Command usertool administers the embedded identity provider's store:
// app clients, user accounts, group memberships and token minting. It opens
// the badger store directly, so it runs against a stopped API process.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fulfillment/internal/identity"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	service, closeStore := openService()

	runErr := runCommand(service, os.Args[1], os.Args[2:])
	closeStore()

	if runErr != nil {
		log.Fatal(runErr)
	}
}

func runCommand(service *identity.Service, command string, args []string) error {
	switch command {
	case "create-client":
		return runCreateClient(service, args)
	case "create-user":
		return runCreateUser(service, args)
	case "set-password":
		return runSetPassword(service, args)
	case "add-to-group":
		return runAddToGroup(service, args)
	case "delete-user":
		return runDeleteUser(service, args)
	case "token":
		return runToken(service, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func openService() (*identity.Service, func()) {
	dir := os.Getenv("IDENTITY_DIR")
	if strings.TrimSpace(dir) == "" {
		log.Fatal("IDENTITY_DIR is required")
	}

	secret := os.Getenv("TOKEN_SECRET")
	if strings.TrimSpace(secret) == "" {
		log.Fatal("TOKEN_SECRET is required")
	}

	tokenTTL := time.Hour
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid TOKEN_TTL: %v", err)
		}
		tokenTTL = parsed
	}

	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		log.Fatalf("opening identity store: %v", err)
	}

	service, err := identity.NewService(db, []byte(secret), tokenTTL)
	if err != nil {
		_ = db.Close()
		log.Fatalf("identity service: %v", err)
	}

	return service, func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Printf("closing identity store: %v", closeErr)
		}
	}
}

func runCreateClient(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("create-client", flag.ExitOnError)
	name := fs.String("name", "", "client application name")
	_ = fs.Parse(args)

	if *name == "" {
		return errors.New("create-client: -name is required")
	}

	client, err := service.CreateClient(*name)
	if err != nil {
		return err
	}

	fmt.Println(client.ID)
	return nil
}

func runCreateUser(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	_ = fs.Parse(args)

	if *username == "" || *email == "" {
		return errors.New("create-user: -username and -email are required")
	}

	user, err := service.AdminCreateUser(*username, *email)
	if err != nil {
		return err
	}

	log.Printf("User %s created", user.Username)
	return nil
}

func runSetPassword(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("set-password", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "new password")
	_ = fs.Parse(args)

	if *username == "" || *password == "" {
		return errors.New("set-password: -username and -password are required")
	}

	if err := service.AdminSetUserPassword(*username, *password); err != nil {
		return err
	}

	log.Printf("Password set for %s", *username)
	return nil
}

func runAddToGroup(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("add-to-group", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	group := fs.String("group", identity.GroupAdmin, "group to grant")
	_ = fs.Parse(args)

	if *username == "" {
		return errors.New("add-to-group: -username is required")
	}

	if err := service.AdminAddUserToGroup(*username, *group); err != nil {
		return err
	}

	log.Printf("User %s added to group %s", *username, *group)
	return nil
}

func runDeleteUser(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("delete-user", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	_ = fs.Parse(args)

	if *username == "" {
		return errors.New("delete-user: -username is required")
	}

	if err := service.AdminDeleteUser(*username); err != nil {
		return err
	}

	log.Printf("User %s deleted", *username)
	return nil
}

func runToken(service *identity.Service, args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	clientID := fs.String("client", "", "app client id")
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *clientID == "" || *username == "" || *password == "" {
		return errors.New("token: -client, -username and -password are required")
	}

	token, err := service.InitiateAuth(*clientID, *username, *password)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: usertool <command> [flags]

commands:
  create-client  -name <name>                                register an app client, prints its id
  create-user    -username <u> -email <e>                    register a user account
  set-password   -username <u> -password <p>                 set a user's password
  add-to-group   -username <u> [-group <g>]                  grant a group membership (default admin)
  delete-user    -username <u>                               remove a user account
  token          -client <id> -username <u> -password <p>    exchange credentials for a token

The identity store location and signing secret come from IDENTITY_DIR and
TOKEN_SECRET (.env or environment); TOKEN_TTL bounds minted token lifetime.`)
}
