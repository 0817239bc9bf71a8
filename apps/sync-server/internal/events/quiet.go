package events

import "context"

type quietKey struct{}

// Quiet は指定ルーターの更新イベントを抑止するコンテキストを返す。
// 同期処理自身がルーターへ書き戻す際の再入防止に使用する。
func Quiet(ctx context.Context, routerID int64) context.Context {
	ids := quietRouters(ctx)
	next := make(map[int64]struct{}, len(ids)+1)
	for id := range ids {
		next[id] = struct{}{}
	}
	next[routerID] = struct{}{}
	return context.WithValue(ctx, quietKey{}, next)
}

// IsQuiet は指定ルーターの更新イベントが抑止対象かを返す。
func IsQuiet(ctx context.Context, routerID int64) bool {
	_, ok := quietRouters(ctx)[routerID]
	return ok
}

func quietRouters(ctx context.Context) map[int64]struct{} {
	if ctx == nil {
		return nil
	}
	ids, _ := ctx.Value(quietKey{}).(map[int64]struct{})
	return ids
}
