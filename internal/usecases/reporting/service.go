package reporting

import (
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	defaultAccountName = "Unknown"
	defaultCurrency    = "USD"
)

// Reporter agrega as métricas de anúncios por conta, campanha e dia, tanto
// para uma conta isolada quanto para todas as contas de um Business Manager.
type Reporter interface {
	ListAccounts(token, businessID string) ([]domain.AdAccount, error)
	AccountInfo(token, accountID string) (*metadomain.AdAccountInfo, error)
	AccountSummary(token, accountID, datePreset string) (*domain.AccountSummary, error)
	BusinessSummary(token, businessID, datePreset string) ([]domain.AccountSummary, error)
	AccountCampaigns(token, accountID, datePreset string) ([]domain.CampaignRecord, error)
	BusinessCampaigns(token, businessID, datePreset string) ([]domain.CampaignRecord, error)
	AccountDaily(token, accountID, datePreset string) ([]domain.DailyRecord, error)
	BusinessDaily(token, businessID, datePreset string) ([]domain.DailyRecord, error)
}

type Service struct {
	cfg    *config.Config
	client metaclient.Client
}

func NewService(cfg *config.Config, client metaclient.Client) Reporter {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// ListAccounts lista as contas de anúncios de um Business Manager. Uma falha
// aqui (token ou business_id inválido) invalida a requisição inteira.
func (s *Service) ListAccounts(token, businessID string) ([]domain.AdAccount, error) {
	adAccounts, err := s.client.GetAdAccountsByBusinessID(token, businessID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("reports: failed to list ad accounts for business")
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0, len(adAccounts))
	for _, adAccount := range adAccounts {
		accounts = append(accounts, domain.AdAccount{
			ID:       adAccount.ID,
			Name:     adAccount.Name,
			Currency: adAccount.Currency,
		})
	}

	logrus.WithFields(logrus.Fields{
		"business_id":    businessID,
		"total_accounts": len(accounts),
	}).Debug("reports: successfully listed ad accounts")

	return accounts, nil
}

func (s *Service) AccountInfo(token, accountID string) (*metadomain.AdAccountInfo, error) {
	return s.client.GetAdAccountInfo(token, accountID)
}

// AccountSummary agrega as métricas de uma única conta no período. Retorna
// nil quando a conta não tem linhas de insights no período.
func (s *Service) AccountSummary(token, accountID, datePreset string) (*domain.AccountSummary, error) {
	info, err := s.client.GetAdAccountInfo(token, accountID)
	if err != nil {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = defaultAccountName
	}

	currency := info.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return s.summarizeAccount(token, accountID, name, currency, datePreset), nil
}

// BusinessSummary agrega as métricas de cada conta do Business Manager,
// sequencialmente. Contas que falham ou não têm dados no período são
// registradas em log e omitidas do resultado; a falha de uma conta nunca
// derruba as demais.
func (s *Service) BusinessSummary(token, businessID, datePreset string) ([]domain.AccountSummary, error) {
	accounts, err := s.ListAccounts(token, businessID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		name := account.Name
		if name == "" {
			name = defaultAccountName
		}

		currency := account.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		summary := s.summarizeAccount(token, account.ID, name, currency, datePreset)
		if summary != nil {
			summaries = append(summaries, *summary)
		}
	}

	return summaries, nil
}

// summarizeAccount busca e agrega os insights de uma conta. Qualquer falha é
// isolada: registrada em log e convertida em ausência de resumo.
func (s *Service) summarizeAccount(token, accountID, accountName, currency, datePreset string) *domain.AccountSummary {
	normalizedID := metadomain.NormalizeAccountID(accountID)

	rows, err := s.client.GetAccountInsights(token, normalizedID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  normalizedID,
			"date_preset": datePreset,
			"error":       err.Error(),
		}).Error("reports: failed to fetch insights for account")
		return nil
	}

	if len(rows) == 0 {
		logrus.WithField("account_id", normalizedID).Debug("reports: no insight rows for account in period")
		return nil
	}

	summary := AggregateRows(rows)
	summary.AccountID = normalizedID
	summary.AccountName = accountName
	summary.Currency = currency

	return &summary
}

// AccountCampaigns retorna a quebra por campanha de uma conta, com a URL de
// destino resolvida a partir dos criativos dos anúncios.
func (s *Service) AccountCampaigns(token, accountID, datePreset string) ([]domain.CampaignRecord, error) {
	rows, err := s.client.GetCampaignInsights(token, accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reports: failed to fetch campaign insights for account")
		return nil, err
	}

	urls := s.resolveCampaignURLs(token, accountID)

	records := make([]domain.CampaignRecord, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		records = append(records, campaignRecord(row, urls[row.CampaignID]))
	}

	return records, nil
}

// BusinessCampaigns retorna a quebra por campanha de todas as contas do
// Business Manager, com os campos de identidade da conta em cada linha.
// Contas com falha são omitidas.
func (s *Service) BusinessCampaigns(token, businessID, datePreset string) ([]domain.CampaignRecord, error) {
	accounts, err := s.ListAccounts(token, businessID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.CampaignRecord, 0)
	for _, account := range accounts {
		normalizedID := metadomain.NormalizeAccountID(account.ID)

		rows, err := s.client.GetCampaignInsights(token, normalizedID, datePreset)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": normalizedID,
				"error":      err.Error(),
			}).Error("reports: failed to fetch campaign insights for account")
			continue
		}

		name := account.Name
		if name == "" {
			name = defaultAccountName
		}

		currency := account.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		for i := range rows {
			record := campaignRecord(&rows[i], "")
			record.AccountName = name
			record.AccountCurrency = currency
			records = append(records, record)
		}
	}

	return records, nil
}

// AccountDaily retorna as linhas diárias de uma conta no período.
func (s *Service) AccountDaily(token, accountID, datePreset string) ([]domain.DailyRecord, error) {
	rows, err := s.client.GetDailyInsights(token, accountID, datePreset)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reports: failed to fetch daily insights for account")
		return nil, err
	}

	records := make([]domain.DailyRecord, 0, len(rows))
	for i := range rows {
		records = append(records, dailyRecord(&rows[i]))
	}

	return records, nil
}

// BusinessDaily retorna as linhas diárias de todas as contas do Business
// Manager. Contas com falha são omitidas.
func (s *Service) BusinessDaily(token, businessID, datePreset string) ([]domain.DailyRecord, error) {
	accounts, err := s.ListAccounts(token, businessID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.DailyRecord, 0)
	for _, account := range accounts {
		normalizedID := metadomain.NormalizeAccountID(account.ID)

		rows, err := s.client.GetDailyInsights(token, normalizedID, datePreset)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": normalizedID,
				"error":      err.Error(),
			}).Error("reports: failed to fetch daily insights for account")
			continue
		}

		name := account.Name
		if name == "" {
			name = defaultAccountName
		}

		for i := range rows {
			record := dailyRecord(&rows[i])
			record.AccountName = name
			records = append(records, record)
		}
	}

	return records, nil
}

// resolveCampaignURLs inspeciona os criativos dos anúncios da conta e monta o
// mapa campaign_id -> URL de destino. A primeira URL encontrada para cada
// campanha é mantida. Falhas nunca abortam a quebra por campanha: o mapa
// volta vazio e as campanhas ficam sem URL.
func (s *Service) resolveCampaignURLs(token, accountID string) map[string]string {
	urls := make(map[string]string)

	ads, err := s.client.GetAds(token, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reports: failed to fetch ads for campaign url resolution")
		return urls
	}

	for i := range ads {
		ad := &ads[i]
		if ad.CampaignID == "" {
			continue
		}

		if _, ok := urls[ad.CampaignID]; ok {
			continue
		}

		if url := ad.Creative.DestinationURL(); url != "" {
			urls[ad.CampaignID] = url
		}
	}

	return urls
}
