package health

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ongvang00/HealthManagementSystem/internal/service"
	"github.com/ongvang00/HealthManagementSystem/internal/session"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu for creating users, recording data and viewing analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(e *env) error {
			reg, err := e.registry()
			if err != nil {
				return err
			}
			sh := &shell{
				env: e,
				reg: reg,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return sh.run()
		})
	},
}

// errEOF ends the shell when input runs out mid-menu.
var errEOF = errors.New("end of input")

// shell is the numbered-menu front end. It starts logged out; logging in
// also updates the registry so later commands run as the same user.
type shell struct {
	env  *env
	reg  *session.Registry
	in   *bufio.Scanner
	out  io.Writer
	user string
}

func (s *shell) run() error {
	fmt.Fprintln(s.out, "Welcome to the Health Tracker System!")
	err := s.mainMenu()
	if err != nil && !errors.Is(err, errEOF) {
		return err
	}
	fmt.Fprintln(s.out, "Thank you for using the Health Tracker System. Goodbye!")
	return nil
}

func (s *shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readInt returns ok=false after reporting a non-numeric answer.
func (s *shell) readInt(prompt string) (int, bool, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid choice.")
		return 0, false, nil
	}
	return n, true, nil
}

func (s *shell) mainMenu() error {
	for {
		fmt.Fprintln(s.out, "========== Main Menu ==========")
		fmt.Fprintln(s.out, "1. Create User")
		fmt.Fprintln(s.out, "2. Log In")
		fmt.Fprintln(s.out, "3. Enter Health Data")
		fmt.Fprintln(s.out, "4. Show Health Data Analysis")
		fmt.Fprintln(s.out, "5. Exit")
		choice, ok, err := s.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch choice {
		case 1:
			err = s.createUser()
		case 2:
			err = s.login()
		case 3:
			if s.user == "" {
				fmt.Fprintln(s.out, "Please log in first.")
				continue
			}
			err = s.dataMenu()
		case 4:
			if s.user == "" {
				fmt.Fprintln(s.out, "Please log in first.")
				continue
			}
			err = s.analysisMenu()
		case 5:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *shell) createUser() error {
	name, err := s.readLine("Enter a unique username: ")
	if err != nil {
		return err
	}
	if err := s.reg.Create(name); err != nil {
		if errors.Is(err, session.ErrUserExists) {
			fmt.Fprintln(s.out, "Username already exists. Please choose a different username.")
			return nil
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	if err := s.reg.Save(); err != nil {
		return err
	}
	s.user = name
	fmt.Fprintln(s.out, "User created successfully!")
	return nil
}

func (s *shell) login() error {
	name, err := s.readLine("Enter your username: ")
	if err != nil {
		return err
	}
	if err := s.reg.Login(name); err != nil {
		fmt.Fprintln(s.out, "Invalid username. Please try again.")
		return nil
	}
	if err := s.reg.Save(); err != nil {
		return err
	}
	s.user = name
	fmt.Fprintln(s.out, "Login successful!")
	return nil
}

func (s *shell) dataMenu() error {
	for {
		fmt.Fprintln(s.out, "======== Health Data Menu ========")
		fmt.Fprintln(s.out, "1. Enter Calorie Intake")
		fmt.Fprintln(s.out, "2. Enter Exercise Activity")
		fmt.Fprintln(s.out, "3. Enter Sleep Record")
		fmt.Fprintln(s.out, "4. Back to Main Menu")
		choice, ok, err := s.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch choice {
		case 1:
			err = s.enterCalorieIntake()
		case 2:
			err = s.enterExerciseActivity()
		case 3:
			err = s.enterSleepRecord()
		case 4:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *shell) enterCalorieIntake() error {
	food, err := s.readLine("Enter the food item: ")
	if err != nil {
		return err
	}
	calories, ok, err := s.readInt("Enter the caloric value: ")
	if err != nil || !ok {
		return err
	}
	if _, err := service.LogCalorieIntake(s.env.store, service.CalorieIntakeInput{
		Username: s.user,
		FoodItem: food,
		Calories: calories,
	}); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, "Calorie intake recorded successfully!")
	return nil
}

func (s *shell) enterExerciseActivity() error {
	kind, err := s.readLine("Enter the type of exercise: ")
	if err != nil {
		return err
	}
	duration, ok, err := s.readInt("Enter the duration in minutes: ")
	if err != nil || !ok {
		return err
	}
	burned, ok, err := s.readInt("Enter the estimated calories burned: ")
	if err != nil || !ok {
		return err
	}
	if _, err := service.LogExerciseActivity(s.env.store, service.ExerciseActivityInput{
		Username:        s.user,
		ExerciseType:    kind,
		DurationMinutes: duration,
		CaloriesBurned:  burned,
	}); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, "Exercise activity recorded successfully!")
	return nil
}

func (s *shell) enterSleepRecord() error {
	start, err := s.readLine("Enter the sleep start time (HH:mm): ")
	if err != nil {
		return err
	}
	end, err := s.readLine("Enter the sleep end time (HH:mm): ")
	if err != nil {
		return err
	}
	if _, err := service.LogSleepRecord(s.env.store, service.SleepRecordInput{
		Username: s.user,
		Start:    start,
		End:      end,
	}); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, "Sleep record recorded successfully!")
	return nil
}

func (s *shell) analysisMenu() error {
	for {
		fmt.Fprintln(s.out, "======= Analysis Menu =======")
		fmt.Fprintln(s.out, "1. Show Daily Caloric Balance")
		fmt.Fprintln(s.out, "2. Show Sleep Analysis")
		fmt.Fprintln(s.out, "3. Show Exercise Log")
		fmt.Fprintln(s.out, "4. Show Health Summary")
		fmt.Fprintln(s.out, "5. Back to Main Menu")
		choice, ok, err := s.readInt("Enter your choice: ")
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch choice {
		case 1, 2, 3, 4:
			if err := s.showAnalysis(choice); err != nil {
				fmt.Fprintf(s.out, "Error: %v\n", err)
			}
		case 5:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *shell) showAnalysis(choice int) error {
	switch choice {
	case 1:
		lines, err := service.DailyCaloricBalance(s.env.store, s.user)
		if err != nil {
			return err
		}
		printSection(s.out, "Daily Caloric Balance", lines)
	case 2:
		avg, err := service.AverageSleepHours(s.env.store, s.user, s.env.cfg.SleepPolicy)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "=== Sleep Analysis ===")
		fmt.Fprintf(s.out, "Average hours of sleep per day: %.2f\n", avg)
	case 3:
		lines, err := service.ExerciseLog(s.env.store, s.user)
		if err != nil {
			return err
		}
		printSection(s.out, "Exercise Log", lines)
	case 4:
		summary, err := service.BuildHealthSummary(s.env.store, s.user, s.env.cfg.SleepPolicy)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "=== Health Summary ===")
		fmt.Fprintln(s.out, summary.String())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
