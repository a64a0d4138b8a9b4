package timeline

// Wire types for the match-v5 match and timeline payloads. Only the fields
// the analysis reads are declared.

type matchDTO struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info struct {
		GameDuration     int64            `json:"gameDuration"`
		GameEndTimestamp int64            `json:"gameEndTimestamp"`
		GameVersion      string           `json:"gameVersion"`
		QueueID          int              `json:"queueId"`
		Participants     []participantDTO `json:"participants"`
	} `json:"info"`
}

type participantDTO struct {
	ParticipantID               int    `json:"participantId"`
	PUUID                       string `json:"puuid"`
	RiotIDGameName              string `json:"riotIdGameName"`
	RiotIDTagline               string `json:"riotIdTagline"`
	ChampionID                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	TeamID                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	IndividualPosition          string `json:"individualPosition"`
	Win                         bool   `json:"win"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	VisionScore                 int    `json:"visionScore"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
}

type timelineDTO struct {
	Metadata struct {
		MatchID string `json:"matchId"`
	} `json:"metadata"`
	Info struct {
		FrameInterval int64      `json:"frameInterval"`
		Frames        []frameDTO `json:"frames"`
	} `json:"info"`
}

type frameDTO struct {
	Timestamp         int64                          `json:"timestamp"`
	ParticipantFrames map[string]participantFrameDTO `json:"participantFrames"`
	Events            []eventDTO                     `json:"events"`
}

type positionDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type participantFrameDTO struct {
	ParticipantID       int         `json:"participantId"`
	Position            positionDTO `json:"position"`
	TotalGold           int         `json:"totalGold"`
	CurrentGold         int         `json:"currentGold"`
	Level               int         `json:"level"`
	XP                  int         `json:"xp"`
	MinionsKilled       int         `json:"minionsKilled"`
	JungleMinionsKilled int         `json:"jungleMinionsKilled"`
}

type eventDTO struct {
	Type                    string       `json:"type"`
	Timestamp               int64        `json:"timestamp"`
	KillerID                int          `json:"killerId"`
	VictimID                int          `json:"victimId"`
	AssistingParticipantIDs []int        `json:"assistingParticipantIds"`
	Position                *positionDTO `json:"position"`
	MonsterType             string       `json:"monsterType"`
	MonsterSubType          string       `json:"monsterSubType"`
	KillerTeamID            int          `json:"killerTeamId"`
	WardType                string       `json:"wardType"`
	CreatorID               int          `json:"creatorId"`
	ParticipantID           int          `json:"participantId"`
	ItemID                  int          `json:"itemId"`
	BuildingType            string       `json:"buildingType"`
	LaneType                string       `json:"laneType"`
	TeamID                  int          `json:"teamId"`
}
