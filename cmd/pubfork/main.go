package main

import (
	"fmt"
	netHttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/numapde/pubfork/internal/adapter/gitlab"
	"github.com/numapde/pubfork/internal/app"
	"github.com/numapde/pubfork/internal/database"
	"github.com/numapde/pubfork/internal/journal"
	"github.com/numapde/pubfork/internal/limiter"
)

// envPrefix makes envconfig read NUMAPDE_GITLAB_SERVER, NUMAPDE_GITLAB_TOKEN etc.
const envPrefix = "numapde_gitlab"

func main() {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	cliApp := &cli.App{
		Name:      "pubfork",
		Usage:     "fork the numapde Gitlab template repository for a new publication and provide an initial README.md",
		ArgsUsage: "longTitle shortTitle",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "Gitlab namespace for the new project (default numapde/Publications)",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "a short project description for the gitlab web interface",
			},
			&cli.StringFlag{
				Name:  "readme-template",
				Usage: "path to a README template file overriding the built-in one",
			},
		},
		Action: func(c *cli.Context) error {
			return createAction(c, l)
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List repositories created by this tool, newest first",
				Action: func(c *cli.Context) error {
					return listAction(c)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		l.Fatal(err)
	}
}

func createAction(c *cli.Context, l *logrus.Logger) error {
	if c.NArg() != 2 {
		return errors.New("expected exactly two arguments: longTitle shortTitle")
	}

	conf, err := loadConfig()
	if err != nil {
		return err
	}
	if conf.Server == "" {
		return errors.New("please set the NUMAPDE_GITLAB_SERVER variable")
	}
	if conf.Token == "" {
		return errors.New("please set the NUMAPDE_GITLAB_TOKEN variable to your personal Gitlab access token")
	}

	namespace := c.String("namespace")
	if namespace == "" {
		namespace = conf.DefaultNamespace
	}

	var readmeTemplate string
	if path := c.String("readme-template"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "reading readme template")
		}
		readmeTemplate = string(data)
		l.Infof("using readme template %s", path)
	}

	httpClient := &netHttp.Client{
		Timeout: conf.HTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.APIRateLimit,
	)

	gitlabClient := gitlab.NewClient(
		limitedHTTPClient,
		fmt.Sprintf("https://%s/api/v4", conf.Server),
		conf.Token,
	)

	kvStore, err := database.NewBoltKVStore(
		conf.JournalPath,
		conf.JournalBucketName,
	)
	if err != nil {
		return errors.Wrap(err, "opening journal database")
	}
	defer kvStore.Close()

	service := app.NewService(
		gitlabClient,
		journal.New(kvStore),
		conf.TemplateProjectID,
		conf.ReadinessPolls,
		conf.ReadinessWait,
		l.WithField("component", "service"),
	)

	res, err := service.CreatePublication(c.Context, app.CreatePublicationRequest{
		LongTitle:      c.Args().Get(0),
		ShortTitle:     c.Args().Get(1),
		Namespace:      namespace,
		Description:    c.String("description"),
		ReadmeTemplate: readmeTemplate,
		ToolName:       c.App.Name,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Clone the new repository using\n  git clone --recurse-submodules %s\n", res.Project.SSHURLToRepo)
	fmt.Printf("Then update the submodules via\n  bin/numapde-submodules-update.sh\n")

	return nil
}

func listAction(c *cli.Context) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	kvStore, err := database.NewBoltKVStore(
		conf.JournalPath,
		conf.JournalBucketName,
	)
	if err != nil {
		return errors.Wrap(err, "opening journal database")
	}
	defer kvStore.Close()

	entries, err := journal.New(kvStore).List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No repositories created yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.PathWithNamespace, e.WebURL)
	}

	return nil
}

func loadConfig() (Config, error) {
	// A .env file in the working directory complements the real environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "loading .env file")
	}

	var conf Config
	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return Config{}, errors.Wrap(err, "parsing environment config")
	}

	return conf, nil
}
