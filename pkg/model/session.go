package model

import "time"

// AccountingSession はRADIUSアカウンティングログ（radacct）の1行を表す。
// 外部（RADIUSサーバー）が書き込み、本サービスは参照のみ行う。
type AccountingSession struct {
	AcctSessionID   string     `db:"acctsessionid" json:"acct_session_id"`
	Username        string     `db:"username" json:"username"`
	NasIPAddress    string     `db:"nasipaddress" json:"nas_ip_address"`
	FramedIPAddress string     `db:"framedipaddress" json:"framed_ip_address,omitempty"`
	StartTime       time.Time  `db:"acctstarttime" json:"start_time"`
	StopTime        *time.Time `db:"acctstoptime" json:"stop_time,omitempty"`
	InputOctets     int64      `db:"acctinputoctets" json:"input_octets"`
	OutputOctets    int64      `db:"acctoutputoctets" json:"output_octets"`
}

// IsOpen は未終了（Stop未受信）のセッションかどうかを返す。
func (s *AccountingSession) IsOpen() bool {
	return s != nil && s.StopTime == nil
}

// Duration は now 時点での経過時間を返す。終了済みの場合は開始から終了まで。
func (s *AccountingSession) Duration(now time.Time) time.Duration {
	if s == nil {
		return 0
	}
	end := now
	if s.StopTime != nil {
		end = *s.StopTime
	}
	if end.Before(s.StartTime) {
		return 0
	}
	return end.Sub(s.StartTime)
}

// Usage は期間内の通信量集計を表す。
type Usage struct {
	Upload   int64 `db:"total_input" json:"upload"`
	Download int64 `db:"total_output" json:"download"`
	Total    int64 `db:"total_usage" json:"total"`
}
