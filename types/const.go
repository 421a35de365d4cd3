package types

//raffle action ty
const (
	RaffleActionCreate = iota + 1
	RaffleActionBuy
	RaffleActionCommitDraw
	RaffleActionSettleDraw
	RaffleActionClaim
	RaffleActionRefund
	RaffleActionCancel
)

const (
	//log for raffle
	TyLogRaffleCreate     = 901
	TyLogRaffleBuy        = 902
	TyLogRaffleCommitDraw = 903
	TyLogRaffleSettleDraw = 904
	TyLogRaffleClaim      = 905
	TyLogRaffleRefund     = 906
	TyLogRaffleCancel     = 907
)

//raffle status
const (
	RaffleStatusActive = iota + 1
	RaffleStatusDrawCommitted
	RaffleStatusDrawComplete
	RaffleStatusClaimed
	RaffleStatusCancelled
)

const (
	//平台抽成比例，奖池和退款都按此比例收取
	FeeRatePercent = 10
	//名称长度上限
	MaxNameLen = 64
	//sha256承诺长度
	CommitmentLen = 32
)

//包的名字可以通过配置文件来配置
//建议用github的组织名称，或者用户名字开头, 再加上自己的插件的名字
var (
	JRPCName     = "Raffle"
	RaffleX      = "raffle"
	ExecerRaffle = []byte(RaffleX)
)

const (
	//查询方法名
	FuncName_QueryRaffleById         = "QueryRaffleById"
	FuncName_QueryRafflesByIds       = "QueryRafflesByIds"
	FuncName_QueryRaffleListByStatus = "QueryRaffleListByStatus"
	FuncName_QueryRaffleListByAddr   = "QueryRaffleListByAddr"
	FuncName_QueryRaffleEntry        = "QueryRaffleEntry"
)
